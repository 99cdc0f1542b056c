package component

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kailas-cloud/cmsdash/internal/db"
	"github.com/kailas-cloud/cmsdash/internal/domain"
	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
)

// store is the consumer interface for components (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	HDel(ctx context.Context, key string, fields ...string) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/component.Repository.
type Repo struct {
	store store
}

// New creates a component repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Exists reports whether a component with id is stored.
func (r *Repo) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.store.Exists(ctx, componentKey(id))
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", id, err)
	}
	return ok, nil
}

// Create stores a new component. An existing id yields domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c domcomp.Component) error {
	key := componentKey(c.ID())
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if exists {
		return fmt.Errorf("component %s: %w", c.ID(), domain.ErrAlreadyExists)
	}

	fields, _ := componentToHash(c)
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	return nil
}

// Get returns a component by id.
func (r *Repo) Get(ctx context.Context, id string) (domcomp.Component, error) {
	key := componentKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domcomp.Component{}, fmt.Errorf("component %s: %w", id, domain.ErrNotFound)
		}
		return domcomp.Component{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return componentFromHash(m)
}

// List returns every component, oldest first.
func (r *Repo) List(ctx context.Context) ([]domcomp.Component, error) {
	keys, err := r.store.Scan(ctx, componentKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan components: %w", err)
	}
	if len(keys) == 0 {
		return []domcomp.Component{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi components: %w", err)
	}

	out := make([]domcomp.Component, 0, len(results))
	for i, m := range results {
		if m == nil {
			continue // deleted between SCAN and HGETALL
		}
		c, err := componentFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse component %s: %w", keys[i], err)
		}
		out = append(out, c)
	}

	slices.SortFunc(out, func(a, b domcomp.Component) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID(), b.ID())
	})
	return out, nil
}

// Update overwrites a stored component and clears optional fields that
// became empty.
func (r *Repo) Update(ctx context.Context, c domcomp.Component) error {
	key := componentKey(c.ID())
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("component %s: %w", c.ID(), domain.ErrNotFound)
	}

	fields, cleared := componentToHash(c)
	if err := r.store.HSet(ctx, key, fields); err != nil {
		return fmt.Errorf("hset %s: %w", key, err)
	}
	if err := r.store.HDel(ctx, key, cleared...); err != nil {
		return fmt.Errorf("hdel %s: %w", key, err)
	}
	return nil
}

// Delete removes a component.
func (r *Repo) Delete(ctx context.Context, id string) error {
	key := componentKey(id)
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if !exists {
		return fmt.Errorf("component %s: %w", id, domain.ErrNotFound)
	}
	if err := r.store.Del(ctx, key); err != nil {
		return fmt.Errorf("del %s: %w", key, err)
	}
	return nil
}

// Key pattern: cmsdash:component:{id}

func componentKey(id string) string {
	return fmt.Sprintf("%scomponent:%s", domain.KeyPrefix, id)
}
