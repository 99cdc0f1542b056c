package component

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	"github.com/kailas-cloud/cmsdash/internal/metrics"
)

const (
	kind = "component"

	// maxIDAttempts bounds retries when a generated id is already taken.
	maxIDAttempts = 3
)

// Service handles component CRUD.
type Service struct {
	repo            Repository
	ids             IDGenerator
	stats           Invalidator
	logger          *zap.Logger
	now             func() time.Time
	defaultPageSize int
	maxPageSize     int
}

// New creates a component service.
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

// Create validates d and stores a new component under a fresh id.
func (s *Service) Create(ctx context.Context, d domcomp.Draft) (domcomp.Component, error) {
	id, err := s.allocateID(ctx)
	if err != nil {
		return domcomp.Component{}, err
	}

	c, err := domcomp.New(id, d, s.now())
	if err != nil {
		return domcomp.Component{}, err
	}

	err = s.repo.Create(ctx, c)
	s.record("create", err)
	if err != nil {
		return domcomp.Component{}, fmt.Errorf("create component: %w", err)
	}

	s.invalidate("component created")
	return c, nil
}

// Get returns a component by id.
func (s *Service) Get(ctx context.Context, id string) (domcomp.Component, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return domcomp.Component{}, fmt.Errorf("get component: %w", err)
	}
	return c, nil
}

// List returns one window of components matching q.
func (s *Service) List(ctx context.Context, q listing.Query) (listing.Page[domcomp.Component], error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return listing.Page[domcomp.Component]{}, fmt.Errorf("list components: %w", err)
	}
	return listing.Apply(items, q.Normalize(s.defaultPageSize, s.maxPageSize), ListSchema)
}

// All returns every stored component.
func (s *Service) All(ctx context.Context) ([]domcomp.Component, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list components: %w", err)
	}
	return items, nil
}

// Update applies p to the component. A positive expectedRevision must match
// the stored revision, otherwise a *domain.RevisionConflictError is returned.
func (s *Service) Update(
	ctx context.Context, id string, p domcomp.Patch, expectedRevision int,
) (domcomp.Component, error) {
	cur, err := s.repo.Get(ctx, id)
	if err != nil {
		return domcomp.Component{}, fmt.Errorf("get component: %w", err)
	}
	if expectedRevision > 0 && cur.Revision() != expectedRevision {
		return domcomp.Component{}, domain.NewRevisionConflict(cur.Revision())
	}

	next, err := cur.Apply(p, s.now())
	if err != nil {
		return domcomp.Component{}, err
	}

	err = s.repo.Update(ctx, next)
	s.record("update", err)
	if err != nil {
		return domcomp.Component{}, fmt.Errorf("update component: %w", err)
	}

	s.invalidate("component updated")
	return next, nil
}

// Delete removes a component.
func (s *Service) Delete(ctx context.Context, id string) error {
	err := s.repo.Delete(ctx, id)
	s.record("delete", err)
	if err != nil {
		return fmt.Errorf("delete component: %w", err)
	}
	s.invalidate("component deleted")
	return nil
}

func (s *Service) allocateID(ctx context.Context) (string, error) {
	for range maxIDAttempts {
		id := s.ids.NewID()
		exists, err := s.repo.Exists(ctx, id)
		if err != nil {
			return "", fmt.Errorf("check component id: %w", err)
		}
		if !exists {
			return id, nil
		}
		s.logger.Warn("generated component id already taken", zap.String("id", id))
	}
	return "", fmt.Errorf("allocate component id after %d attempts: %w", maxIDAttempts, domain.ErrAlreadyExists)
}

func (s *Service) record(op string, err error) {
	metrics.ContentWritesTotal.WithLabelValues(kind, op, metrics.Result(err)).Inc()
}

func (s *Service) invalidate(reason string) {
	if s.stats != nil {
		s.stats.Invalidate(reason)
	}
}
