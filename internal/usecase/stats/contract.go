package stats

import (
	"context"

	"github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/page"
)

// ComponentSource lists every stored component.
type ComponentSource interface {
	List(ctx context.Context) ([]component.Component, error)
}

// PageSource lists every stored page.
type PageSource interface {
	List(ctx context.Context) ([]page.Page, error)
}
