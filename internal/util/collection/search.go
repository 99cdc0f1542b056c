package collection

import (
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// SearchKey yields the searchable string form of one field.
// ok=false means the field is absent and never matches.
type SearchKey[T any] func(item T) (value string, ok bool)

// Text searches a string field.
func Text[T any, S ~string](get func(T) S) SearchKey[T] {
	return func(item T) (string, bool) {
		return string(get(item)), true
	}
}

// Optional searches a nullable string field; nil never matches.
func Optional[T any, S ~string](get func(T) *S) SearchKey[T] {
	return func(item T) (string, bool) {
		v := get(item)
		if v == nil {
			return "", false
		}
		return string(*v), true
	}
}

// Numeric is any integer or float type.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Number searches a numeric field by its shortest decimal form ("42", "1.5").
func Number[T any, N Numeric](get func(T) N) SearchKey[T] {
	return func(item T) (string, bool) {
		return strconv.FormatFloat(float64(get(item)), 'f', -1, 64), true
	}
}

// Stringer searches a field through its String method; nil never matches.
func Stringer[T any, V fmt.Stringer](get func(T) V) SearchKey[T] {
	return func(item T) (string, bool) {
		v := get(item)
		if isNil(v) {
			return "", false
		}
		return v.String(), true
	}
}

// isNil also catches typed nils, such as a nil *T stored in the interface.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}

// FilterBySearch keeps the items where any key's value contains term,
// case-insensitively, preserving input order. An empty term returns items
// unchanged.
func FilterBySearch[T any](items []T, term string, keys ...SearchKey[T]) []T {
	if term == "" {
		return items
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(items))
	for _, item := range items {
		if matches(item, needle, keys) {
			out = append(out, item)
		}
	}
	return out
}

func matches[T any](item T, needle string, keys []SearchKey[T]) bool {
	for _, key := range keys {
		v, ok := key(item)
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(v), needle) {
			return true
		}
	}
	return false
}

// SearchFields maps public field names to search keys.
type SearchFields[T any] map[string]SearchKey[T]

// Keys returns the keys for names, skipping unknown names. With no names it
// returns every key in name order.
func (f SearchFields[T]) Keys(names ...string) []SearchKey[T] {
	if len(names) == 0 {
		all := make([]string, 0, len(f))
		for name := range f {
			all = append(all, name)
		}
		sort.Strings(all)
		names = all
	}
	keys := make([]SearchKey[T], 0, len(names))
	for _, name := range names {
		if k, ok := f[name]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}
