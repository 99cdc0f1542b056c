package cmsdash

import (
	"context"
	"fmt"
	"time"
)

// PageService manages pages.
type PageService struct {
	svc pageUseCase
	obs *observer
}

// Create stores a new page. Every component id must exist.
func (s *PageService) Create(ctx context.Context, in PageInput) (_ Page, err error) {
	start := time.Now()
	defer func() { s.obs.observe("page.create", start, err) }()

	p, err := s.svc.Create(ctx, toInternalPageDraft(in))
	if err != nil {
		return Page{}, fmt.Errorf("create page: %w", err)
	}
	return fromInternalPage(p), nil
}

// Get returns a page by id.
func (s *PageService) Get(ctx context.Context, id string) (_ Page, err error) {
	start := time.Now()
	defer func() { s.obs.observe("page.get", start, err) }()

	p, err := s.svc.Get(ctx, id)
	if err != nil {
		return Page{}, fmt.Errorf("get page %s: %w", id, err)
	}
	return fromInternalPage(p), nil
}

// GetBySlug returns the page published under slug.
func (s *PageService) GetBySlug(ctx context.Context, slug string) (_ Page, err error) {
	start := time.Now()
	defer func() { s.obs.observe("page.get_by_slug", start, err) }()

	p, err := s.svc.GetBySlug(ctx, slug)
	if err != nil {
		return Page{}, fmt.Errorf("get page by slug %q: %w", slug, err)
	}
	return fromInternalPage(p), nil
}

// List returns one window of pages matching opts.
func (s *PageService) List(ctx context.Context, opts ListOptions) (_ ListResult[Page], err error) {
	start := time.Now()
	defer func() { s.obs.observe("page.list", start, err) }()

	res, err := s.svc.List(ctx, toInternalQuery(opts))
	if err != nil {
		return ListResult[Page]{}, fmt.Errorf("list pages: %w", err)
	}
	return fromInternalList(res, fromInternalPage), nil
}

// Update applies p with the same revision rules as ComponentService.Update.
func (s *PageService) Update(
	ctx context.Context, id string, p PagePatch, expectedRevision int,
) (_ Page, err error) {
	start := time.Now()
	defer func() { s.obs.observe("page.update", start, err) }()

	patch, err := toInternalPagePatch(p)
	if err != nil {
		return Page{}, fmt.Errorf("update page %s: %w", id, err)
	}
	out, err := s.svc.Update(ctx, id, patch, expectedRevision)
	if err != nil {
		return Page{}, fmt.Errorf("update page %s: %w", id, err)
	}
	return fromInternalPage(out), nil
}

// Delete removes a page and frees its slug.
func (s *PageService) Delete(ctx context.Context, id string) (err error) {
	start := time.Now()
	defer func() { s.obs.observe("page.delete", start, err) }()

	if err = s.svc.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete page %s: %w", id, err)
	}
	return nil
}

// Duplicate copies a page as a new draft under a free slug.
func (s *PageService) Duplicate(ctx context.Context, id string) (_ Page, err error) {
	start := time.Now()
	defer func() { s.obs.observe("page.duplicate", start, err) }()

	p, err := s.svc.Duplicate(ctx, id)
	if err != nil {
		return Page{}, fmt.Errorf("duplicate page %s: %w", id, err)
	}
	return fromInternalPage(p), nil
}
