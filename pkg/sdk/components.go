package cmsdash

import (
	"context"
	"fmt"
	"time"

	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
)

// ComponentService manages components.
type ComponentService struct {
	svc componentUseCase
	obs *observer
}

// Create stores a new component. The slug is derived from the name.
func (s *ComponentService) Create(ctx context.Context, in ComponentInput) (_ Component, err error) {
	start := time.Now()
	defer func() { s.obs.observe("component.create", start, err) }()

	c, err := s.svc.Create(ctx, domcomp.Draft{
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		AuthorEmail: in.AuthorEmail,
	})
	if err != nil {
		return Component{}, fmt.Errorf("create component: %w", err)
	}
	return fromInternalComponent(c), nil
}

// Get returns a component by id.
func (s *ComponentService) Get(ctx context.Context, id string) (_ Component, err error) {
	start := time.Now()
	defer func() { s.obs.observe("component.get", start, err) }()

	c, err := s.svc.Get(ctx, id)
	if err != nil {
		return Component{}, fmt.Errorf("get component %s: %w", id, err)
	}
	return fromInternalComponent(c), nil
}

// List returns one window of components matching opts.
func (s *ComponentService) List(ctx context.Context, opts ListOptions) (_ ListResult[Component], err error) {
	start := time.Now()
	defer func() { s.obs.observe("component.list", start, err) }()

	page, err := s.svc.List(ctx, toInternalQuery(opts))
	if err != nil {
		return ListResult[Component]{}, fmt.Errorf("list components: %w", err)
	}
	return fromInternalList(page, fromInternalComponent), nil
}

// Update applies p. A positive expectedRevision must match the stored
// revision or the call fails with ErrRevisionConflict; zero skips the check.
func (s *ComponentService) Update(
	ctx context.Context, id string, p ComponentPatch, expectedRevision int,
) (_ Component, err error) {
	start := time.Now()
	defer func() { s.obs.observe("component.update", start, err) }()

	patch, err := domcomp.NewPatch(p.Name, p.Category, p.Description, p.AuthorEmail)
	if err != nil {
		return Component{}, fmt.Errorf("update component %s: %w", id, err)
	}
	c, err := s.svc.Update(ctx, id, patch, expectedRevision)
	if err != nil {
		return Component{}, fmt.Errorf("update component %s: %w", id, err)
	}
	return fromInternalComponent(c), nil
}

// Delete removes a component.
func (s *ComponentService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("component.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete component %s: %w", id, err)
	}
	return nil
}
