package page

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kailas-cloud/cmsdash/internal/db"
	"github.com/kailas-cloud/cmsdash/internal/domain"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
)

// store is the consumer interface for pages (ISP).
//
//nolint:interfacebloat // page repo needs hash ops plus the slug index
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	HDel(ctx context.Context, key string, fields ...string) error
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
	Get(ctx context.Context, key string) ([]byte, error)
	SetNX(ctx context.Context, key string, value []byte) (bool, error)
}

// Repo implements usecase/page.Repository. Each page is a hash; a string
// key per slug points back at the page id and enforces slug uniqueness.
type Repo struct {
	store store
}

// New creates a page repository.
func New(s store) *Repo {
	return &Repo{store: s}
}

// Exists reports whether a page with id is stored.
func (r *Repo) Exists(ctx context.Context, id string) (bool, error) {
	ok, err := r.store.Exists(ctx, pageKey(id))
	if err != nil {
		return false, fmt.Errorf("check exists %s: %w", id, err)
	}
	return ok, nil
}

// Create stores a new page: claim the slug, then HSET the page.
// On HSET failure the slug claim is released.
func (r *Repo) Create(ctx context.Context, p dompage.Page) error {
	key := pageKey(p.ID())
	exists, err := r.store.Exists(ctx, key)
	if err != nil {
		return fmt.Errorf("check exists %s: %w", key, err)
	}
	if exists {
		return fmt.Errorf("page %s: %w", p.ID(), domain.ErrAlreadyExists)
	}

	if err := r.claimSlug(ctx, p.Slug(), p.ID()); err != nil {
		return err
	}

	fields, err := pageToHash(p)
	if err != nil {
		return errors.Join(err, r.store.Del(ctx, slugKey(p.Slug())))
	}
	if err := r.store.HSet(ctx, key, fields); err != nil {
		cleanupErr := r.store.Del(ctx, slugKey(p.Slug()))
		return errors.Join(fmt.Errorf("hset %s: %w", key, err), cleanupErr)
	}
	return nil
}

// Get returns a page by id.
func (r *Repo) Get(ctx context.Context, id string) (dompage.Page, error) {
	key := pageKey(id)
	m, err := r.store.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return dompage.Page{}, fmt.Errorf("page %s: %w", id, domain.ErrNotFound)
		}
		return dompage.Page{}, fmt.Errorf("hgetall %s: %w", key, err)
	}
	return pageFromHash(m)
}

// GetBySlug resolves a slug through the index and returns the page.
func (r *Repo) GetBySlug(ctx context.Context, slug string) (dompage.Page, error) {
	raw, err := r.store.Get(ctx, slugKey(slug))
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return dompage.Page{}, fmt.Errorf("page slug %q: %w", slug, domain.ErrNotFound)
		}
		return dompage.Page{}, fmt.Errorf("get slug %q: %w", slug, err)
	}
	return r.Get(ctx, string(raw))
}

// List returns every page, oldest first.
func (r *Repo) List(ctx context.Context) ([]dompage.Page, error) {
	keys, err := r.store.Scan(ctx, pageKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan pages: %w", err)
	}
	if len(keys) == 0 {
		return []dompage.Page{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi pages: %w", err)
	}

	out := make([]dompage.Page, 0, len(results))
	for i, m := range results {
		if m == nil {
			continue // deleted between SCAN and HGETALL
		}
		p, err := pageFromHash(m)
		if err != nil {
			return nil, fmt.Errorf("parse page %s: %w", keys[i], err)
		}
		out = append(out, p)
	}

	slices.SortFunc(out, func(a, b dompage.Page) int {
		if c := a.CreatedAt().Compare(b.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(a.ID(), b.ID())
	})
	return out, nil
}

// Update overwrites prev with next. A changed slug is claimed before the
// write and the old one released after it.
func (r *Repo) Update(ctx context.Context, prev, next dompage.Page) error {
	key := pageKey(next.ID())
	slugChanged := prev.Slug() != next.Slug()
	if slugChanged {
		if err := r.claimSlug(ctx, next.Slug(), next.ID()); err != nil {
			return err
		}
	}

	fields, err := pageToHash(next)
	if err == nil {
		err = r.store.HSet(ctx, key, fields)
	}
	if err != nil {
		err = fmt.Errorf("hset %s: %w", key, err)
		if slugChanged {
			err = errors.Join(err, r.store.Del(ctx, slugKey(next.Slug())))
		}
		return err
	}

	if err := r.store.HDel(ctx, key, clearedFields(next)...); err != nil {
		return fmt.Errorf("hdel %s: %w", key, err)
	}
	if slugChanged {
		if err := r.store.Del(ctx, slugKey(prev.Slug())); err != nil {
			return fmt.Errorf("release slug %q: %w", prev.Slug(), err)
		}
	}
	return nil
}

// Delete removes a page and its slug index entry.
func (r *Repo) Delete(ctx context.Context, id string) error {
	p, err := r.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := r.store.Del(ctx, pageKey(id)); err != nil {
		return fmt.Errorf("del %s: %w", pageKey(id), err)
	}
	if err := r.store.Del(ctx, slugKey(p.Slug())); err != nil {
		return fmt.Errorf("release slug %q: %w", p.Slug(), err)
	}
	return nil
}

func (r *Repo) claimSlug(ctx context.Context, slug, id string) error {
	ok, err := r.store.SetNX(ctx, slugKey(slug), []byte(id))
	if err != nil {
		return fmt.Errorf("claim slug %q: %w", slug, err)
	}
	if !ok {
		return fmt.Errorf("slug %q is taken: %w", slug, domain.ErrAlreadyExists)
	}
	return nil
}

// Key patterns: cmsdash:page:{id}, cmsdash:page-slug:{slug}

func pageKey(id string) string {
	return fmt.Sprintf("%spage:%s", domain.KeyPrefix, id)
}

func slugKey(slug string) string {
	return fmt.Sprintf("%spage-slug:%s", domain.KeyPrefix, slug)
}
