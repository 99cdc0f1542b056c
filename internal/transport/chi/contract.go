package chi

import (
	"context"

	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
	domstats "github.com/kailas-cloud/cmsdash/internal/domain/stats"
	healthuc "github.com/kailas-cloud/cmsdash/internal/usecase/health"
)

// ComponentService is the component use case consumed by the HTTP API.
type ComponentService interface {
	Create(ctx context.Context, d domcomp.Draft) (domcomp.Component, error)
	Get(ctx context.Context, id string) (domcomp.Component, error)
	List(ctx context.Context, q listing.Query) (listing.Page[domcomp.Component], error)
	Update(ctx context.Context, id string, p domcomp.Patch, expectedRevision int) (domcomp.Component, error)
	Delete(ctx context.Context, id string) error
}

// PageService is the page use case consumed by the HTTP API.
//
//nolint:interfacebloat // mirrors the page endpoints one to one
type PageService interface {
	Create(ctx context.Context, d dompage.Draft) (dompage.Page, error)
	Get(ctx context.Context, id string) (dompage.Page, error)
	GetBySlug(ctx context.Context, slug string) (dompage.Page, error)
	List(ctx context.Context, q listing.Query) (listing.Page[dompage.Page], error)
	Update(ctx context.Context, id string, p dompage.Patch, expectedRevision int) (dompage.Page, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (dompage.Page, error)
	SuggestExcerpt(ctx context.Context, id string) (dompage.Page, error)
}

// StatsService serves the dashboard statistics snapshot.
type StatsService interface {
	Get(ctx context.Context) (domstats.Snapshot, error)
}

// HealthService aggregates dependency checks.
type HealthService interface {
	Check(ctx context.Context) healthuc.Report
}
