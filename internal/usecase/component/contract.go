package component

import (
	"context"

	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
)

// Repository defines the storage contract for components.
type Repository interface {
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, c domcomp.Component) error
	Get(ctx context.Context, id string) (domcomp.Component, error)
	List(ctx context.Context) ([]domcomp.Component, error)
	Update(ctx context.Context, c domcomp.Component) error
	Delete(ctx context.Context, id string) error
}

// IDGenerator issues identifiers for new components.
type IDGenerator interface {
	NewID() string
}

// Invalidator is told when stored content changed.
type Invalidator interface {
	Invalidate(reason string)
}
