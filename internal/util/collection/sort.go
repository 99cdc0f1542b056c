// Package collection provides generic search and sort helpers for list views.
// Accessors are typed functions resolved at the call site, so records never
// need runtime field inspection.
package collection

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Order is a sort direction. The zero value sorts ascending.
type Order string

const (
	// Asc sorts smallest first.
	Asc Order = "asc"
	// Desc sorts largest first.
	Desc Order = "desc"
)

// ErrInvalidOrder signals an unknown sort direction.
var ErrInvalidOrder = errors.New("invalid sort order")

// ParseOrder validates an external sort direction. Empty means Asc.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case "", Asc:
		return Asc, nil
	case Desc:
		return Desc, nil
	default:
		return "", fmt.Errorf("%w: %q (want asc or desc)", ErrInvalidOrder, s)
	}
}

// Comparator orders two items by a single key, like cmp.Compare.
type Comparator[T any] func(a, b T) int

// Key builds a Comparator from a key accessor.
func Key[T any, K cmp.Ordered](get func(T) K) Comparator[T] {
	return func(a, b T) int {
		return cmp.Compare(get(a), get(b))
	}
}

// SortByKey returns a stably sorted copy of items. Items with equal keys
// keep their relative order in both directions. The input is never mutated.
func SortByKey[T any](items []T, by Comparator[T], order Order) []T {
	out := slices.Clone(items)
	if by == nil {
		return out
	}
	if order == Desc {
		slices.SortStableFunc(out, func(a, b T) int { return by(b, a) })
		return out
	}
	slices.SortStableFunc(out, by)
	return out
}

// SortFields maps public field names to comparators.
type SortFields[T any] map[string]Comparator[T]

// Lookup returns the comparator registered under name.
func (f SortFields[T]) Lookup(name string) (Comparator[T], bool) {
	c, ok := f[name]
	return c, ok
}
