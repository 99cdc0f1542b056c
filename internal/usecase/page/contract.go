package page

import (
	"context"

	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
)

// Repository defines the storage contract for pages.
type Repository interface {
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, p dompage.Page) error
	Get(ctx context.Context, id string) (dompage.Page, error)
	GetBySlug(ctx context.Context, slug string) (dompage.Page, error)
	List(ctx context.Context) ([]dompage.Page, error)
	Update(ctx context.Context, prev, next dompage.Page) error
	Delete(ctx context.Context, id string) error
}

// ComponentChecker verifies that components placed on a page exist.
type ComponentChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// IDGenerator issues identifiers for new pages.
type IDGenerator interface {
	NewID() string
}

// Invalidator is told when stored content changed.
type Invalidator interface {
	Invalidate(reason string)
}
