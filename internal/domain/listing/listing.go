// Package listing turns a list query into a filtered, sorted window of items.
package listing

import (
	"fmt"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	"github.com/kailas-cloud/cmsdash/internal/util/collection"
)

// Default window sizes applied by Query.Normalize when the caller has none.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Query is a list request: free-text search over named fields, one sort key,
// and an offset/limit window.
type Query struct {
	Search string
	Fields []string
	SortBy string
	Order  collection.Order
	Limit  int
	Offset int
}

// Normalize clamps the window: a non-positive limit becomes defaultLimit,
// anything above maxLimit becomes maxLimit, and a negative offset becomes 0.
func (q Query) Normalize(defaultLimit, maxLimit int) Query {
	if defaultLimit <= 0 {
		defaultLimit = DefaultLimit
	}
	if maxLimit <= 0 {
		maxLimit = MaxLimit
	}
	if q.Limit <= 0 {
		q.Limit = defaultLimit
	}
	if q.Limit > maxLimit {
		q.Limit = maxLimit
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	return q
}

// Page is one window of results. Total counts all items matching the search.
type Page[T any] struct {
	Items  []T
	Total  int
	Limit  int
	Offset int
}

// HasMore reports whether items exist past this window.
func (p Page[T]) HasMore() bool {
	return p.Offset+len(p.Items) < p.Total
}

// Schema names the searchable and sortable fields of T.
type Schema[T any] struct {
	Search      collection.SearchFields[T]
	Sort        collection.SortFields[T]
	DefaultSort string
}

// Apply filters items by q.Search, sorts them stably by q.SortBy, and cuts
// the q.Offset/q.Limit window. q should be normalized first; a zero limit
// returns every remaining item. Unknown search fields are skipped; an
// unknown sort field yields domain.ErrInvalidQuery.
func Apply[T any](items []T, q Query, s Schema[T]) (Page[T], error) {
	sortBy := q.SortBy
	if sortBy == "" {
		sortBy = s.DefaultSort
	}
	var by collection.Comparator[T]
	if sortBy != "" {
		c, ok := s.Sort.Lookup(sortBy)
		if !ok {
			return Page[T]{}, fmt.Errorf("unknown sort field %q: %w", sortBy, domain.ErrInvalidQuery)
		}
		by = c
	}

	filtered := collection.FilterBySearch(items, q.Search, s.Search.Keys(q.Fields...)...)
	sorted := collection.SortByKey(filtered, by, q.Order)

	total := len(sorted)
	start := min(max(q.Offset, 0), total)
	end := total
	if q.Limit > 0 {
		end = min(start+q.Limit, total)
	}

	return Page[T]{
		Items:  sorted[start:end],
		Total:  total,
		Limit:  q.Limit,
		Offset: start,
	}, nil
}
