package page

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
	"github.com/kailas-cloud/cmsdash/internal/metrics"
	"github.com/kailas-cloud/cmsdash/internal/util/ident"
	"github.com/kailas-cloud/cmsdash/internal/util/text"
)

const (
	kind = "page"

	maxIDAttempts   = 3
	maxSlugAttempts = 5

	// ExcerptSuggestionLength caps generated excerpts, in runes.
	ExcerptSuggestionLength = 160

	copySuffix = " (copy)"
)

// Service handles page CRUD, duplication and excerpt suggestions.
type Service struct {
	repo            Repository
	ids             IDGenerator
	components      ComponentChecker
	summarizer      domain.Summarizer
	stats           Invalidator
	logger          *zap.Logger
	now             func() time.Time
	defaultPageSize int
	maxPageSize     int
}

// New creates a page service.
func New(repo Repository, ids IDGenerator, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		repo:            repo,
		ids:             ids,
		logger:          logger,
		now:             time.Now,
		defaultPageSize: listing.DefaultLimit,
		maxPageSize:     listing.MaxLimit,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// WithComponents enables existence checks for placed components.
func (s *Service) WithComponents(c ComponentChecker) *Service {
	s.components = c
	return s
}

// WithSummarizer enables excerpt suggestions.
func (s *Service) WithSummarizer(sum domain.Summarizer) *Service {
	s.summarizer = sum
	return s
}

// WithInvalidator sets the listener notified after every successful write.
func (s *Service) WithInvalidator(inv Invalidator) *Service {
	s.stats = inv
	return s
}

// WithClock replaces time.Now for timestamps.
func (s *Service) WithClock(now func() time.Time) *Service {
	if now != nil {
		s.now = now
	}
	return s
}

// Create validates d and stores a new page under a fresh id.
// A slug already used by another page yields domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, d dompage.Draft) (dompage.Page, error) {
	id, err := s.allocateID(ctx)
	if err != nil {
		return dompage.Page{}, err
	}

	p, err := dompage.New(id, d, s.now())
	if err != nil {
		return dompage.Page{}, err
	}
	if err := s.checkComponents(ctx, p.ComponentIDs()); err != nil {
		return dompage.Page{}, err
	}

	err = s.repo.Create(ctx, p)
	s.record("create", err)
	if err != nil {
		return dompage.Page{}, fmt.Errorf("create page: %w", err)
	}

	s.invalidate("page created")
	return p, nil
}

// Get returns a page by id.
func (s *Service) Get(ctx context.Context, id string) (dompage.Page, error) {
	p, err := s.repo.Get(ctx, id)
	if err != nil {
		return dompage.Page{}, fmt.Errorf("get page: %w", err)
	}
	return p, nil
}

// GetBySlug returns the page published under slug.
func (s *Service) GetBySlug(ctx context.Context, slug string) (dompage.Page, error) {
	p, err := s.repo.GetBySlug(ctx, text.Slugify(slug))
	if err != nil {
		return dompage.Page{}, fmt.Errorf("get page by slug: %w", err)
	}
	return p, nil
}

// List returns one window of pages matching q.
func (s *Service) List(ctx context.Context, q listing.Query) (listing.Page[dompage.Page], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return listing.Page[dompage.Page]{}, fmt.Errorf("list pages: %w", err)
	}
	return listing.Apply(items, q.Normalize(s.defaultPageSize, s.maxPageSize), ListSchema)
}

// All returns every stored page.
func (s *Service) All(ctx context.Context) ([]dompage.Page, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pages: %w", err)
	}
	return items, nil
}

// Update applies patch to the page. A positive expectedRevision must match
// the stored revision, otherwise a *domain.RevisionConflictError is returned.
func (s *Service) Update(
	ctx context.Context, id string, patch dompage.Patch, expectedRevision int,
) (dompage.Page, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return dompage.Page{}, fmt.Errorf("get page: %w", err)
	}
	return s.update(ctx, cur, patch, expectedRevision, "update")
}

func (s *Service) update(
	ctx context.Context, cur dompage.Page, patch dompage.Patch, expectedRevision int, op string,
) (dompage.Page, error) {
	if expectedRevision > 0 && cur.Revision() != expectedRevision {
		return dompage.Page{}, domain.NewRevisionConflict(cur.Revision())
	}

	next, err := cur.Apply(patch, s.now())
	if err != nil {
		return dompage.Page{}, err
	}
	if patch.ComponentIDs() != nil {
		if err := s.checkComponents(ctx, next.ComponentIDs()); err != nil {
			return dompage.Page{}, err
		}
	}

	err = s.repo.Update(ctx, cur, next)
	s.record(op, err)
	if err != nil {
		return dompage.Page{}, fmt.Errorf("update page: %w", err)
	}

	s.invalidate("page " + op)
	return next, nil
}

// Delete removes a page and frees its slug.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	s.record("delete", err)
	if err != nil {
		return fmt.Errorf("delete page: %w", err)
	}
	s.invalidate("page deleted")
	return nil
}

// Duplicate stores a draft copy of page id. The copy's title gets a
// " (copy)" suffix and its slug is derived from the new title, with a
// numeric suffix when that slug is taken.
func (s *Service) Duplicate(ctx context.Context, id string) (dompage.Page, error) {
	src, err := s.repo.Get(ctx, id)
	if err != nil {
		return dompage.Page{}, fmt.Errorf("get page: %w", err)
	}

	d, err := ident.DeepClone(src.Draft())
	if err != nil {
		return dompage.Page{}, fmt.Errorf("clone page %s: %w", id, err)
	}
	keep := dompage.MaxTitleLength - utf8.RuneCountInString(copySuffix)
	d.Title = text.TruncateWith(d.Title, keep, "") + copySuffix
	d.Status = dompage.StatusDraft

	slug, err := s.freeSlug(ctx, text.Slugify(d.Title))
	if err != nil {
		return dompage.Page{}, err
	}
	d.Slug = slug

	newID, err := s.allocateID(ctx)
	if err != nil {
		return dompage.Page{}, err
	}
	p, err := dompage.New(newID, d, s.now())
	if err != nil {
		return dompage.Page{}, err
	}

	err = s.repo.Create(ctx, p)
	s.record("duplicate", err)
	if err != nil {
		return dompage.Page{}, fmt.Errorf("create page copy: %w", err)
	}

	s.logger.Info("page duplicated", zap.String("source_id", id), zap.String("id", p.ID()))
	s.invalidate("page duplicated")
	return p, nil
}

// SuggestExcerpt asks the summarizer for a short excerpt of the page content
// and saves it. Without a summarizer it returns domain.ErrAssistantDisabled.
func (s *Service) SuggestExcerpt(ctx context.Context, id string) (dompage.Page, error) {
	if s.summarizer == nil {
		return dompage.Page{}, domain.ErrAssistantDisabled
	}

	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return dompage.Page{}, fmt.Errorf("get page: %w", err)
	}
	if strings.TrimSpace(cur.Content()) == "" {
		return dompage.Page{}, domain.Invalid("page %s has no content to summarize", id)
	}

	sum, err := s.summarizer.Summarize(ctx, cur.Content())
	if err != nil {
		return dompage.Page{}, fmt.Errorf("summarize page %s: %w", id, err)
	}
	excerpt := text.Truncate(strings.TrimSpace(sum.Text), ExcerptSuggestionLength)

	patch, err := dompage.NewPatch(dompage.PatchFields{Excerpt: &excerpt})
	if err != nil {
		return dompage.Page{}, err
	}
	return s.update(ctx, cur, patch, cur.Revision(), "excerpt")
}

// freeSlug returns base, or base-2, base-3... when taken.
func (s *Service) freeSlug(ctx context.Context, base string) (string, error) {
	candidate := base
	for i := range maxSlugAttempts {
		if i > 0 {
			candidate = base + "-" + strconv.Itoa(i+1)
		}
		_, err := s.repo.GetBySlug(ctx, candidate)
		if errors.Is(err, domain.ErrNotFound) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("check slug %q: %w", candidate, err)
		}
	}
	return "", fmt.Errorf("no free slug for %q after %d attempts: %w", base, maxSlugAttempts, domain.ErrAlreadyExists)
}

func (s *Service) allocateID(ctx context.Context) (string, error) {
	for range maxIDAttempts {
		id := s.ids.NewID()
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check page id: %w", err)
		}
		if !exists {
			return id, nil
		}
		s.logger.Warn("generated page id already taken", zap.String("id", id))
	}
	return "", fmt.Errorf("allocate page id after %d attempts: %w", maxIDAttempts, domain.ErrAlreadyExists)
}

func (s *Service) checkComponents(ctx context.Context, ids []string) error {
	if s.components == nil {
		return nil
	}
	for _, id := range ids {
		ok, err := s.components.Exists(ctx, id)
		if err != nil {
			return fmt.Errorf("check component %s: %w", id, err)
		}
		if !ok {
			return domain.Invalid("component %s does not exist", id)
		}
	}
	return nil
}

func (s *Service) record(op string, err error) {
	metrics.ContentWritesTotal.WithLabelValues(kind, op, metrics.Result(err)).Inc()
}

func (s *Service) invalidate(reason string) {
	if s.stats != nil {
		s.stats.Invalidate(reason)
	}
}
