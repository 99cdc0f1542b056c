package listing

import (
	"errors"
	"slices"
	"testing"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	"github.com/kailas-cloud/cmsdash/internal/util/collection"
)

type row struct {
	name  string
	tag   string
	score int
}

var schema = Schema[row]{
	Search: collection.SearchFields[row]{
		"name": collection.Text(func(r row) string { return r.name }),
		"tag":  collection.Text(func(r row) string { return r.tag }),
	},
	Sort: collection.SortFields[row]{
		"name":  collection.Key(func(r row) string { return r.name }),
		"score": collection.Key(func(r row) int { return r.score }),
	},
	DefaultSort: "name",
}

var rows = []row{
	{"delta", "blue", 3},
	{"alpha", "red", 1},
	{"charlie", "blue", 3},
	{"bravo", "green", 2},
	{"echo", "red", 5},
}

func names(rs []row) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.name
	}
	return out
}

func TestApply_FilterSortWindow(t *testing.T) {
	q := Query{Search: "BLUE", SortBy: "name", Limit: 1, Offset: 1}
	page, err := Apply(rows, q, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 2 {
		t.Errorf("Total = %d, want 2", page.Total)
	}
	if !slices.Equal(names(page.Items), []string{"delta"}) {
		t.Errorf("Items = %v", names(page.Items))
	}
	if page.HasMore() {
		t.Error("HasMore() = true on last window")
	}
}

func TestApply_DefaultSortAndStableDesc(t *testing.T) {
	page, err := Apply(rows, Query{}, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(names(page.Items), []string{"alpha", "bravo", "charlie", "delta", "echo"}) {
		t.Errorf("default sort = %v", names(page.Items))
	}

	page, _ = Apply(rows, Query{SortBy: "score", Order: collection.Desc}, schema)
	// delta and charlie tie on score and keep their input order.
	if !slices.Equal(names(page.Items), []string{"echo", "delta", "charlie", "bravo", "alpha"}) {
		t.Errorf("score desc = %v", names(page.Items))
	}
}

func TestApply_SearchNamedFieldsOnly(t *testing.T) {
	page, err := Apply(rows, Query{Search: "red", Fields: []string{"name"}}, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 0 {
		t.Errorf("Total = %d, want 0 (tag not searched)", page.Total)
	}
}

func TestApply_UnknownSortField(t *testing.T) {
	if _, err := Apply(rows, Query{SortBy: "colour"}, schema); !errors.Is(err, domain.ErrInvalidQuery) {
		t.Errorf("unknown sort: got %v", err)
	}
}

func TestApply_UnknownSearchFieldsSkipped(t *testing.T) {
	page, err := Apply(rows, Query{Search: "al", Fields: []string{"name", "colour"}}, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !slices.Equal(names(page.Items), []string{"alpha"}) {
		t.Errorf("Items = %v, want [alpha]", names(page.Items))
	}

	// Only unknown names leave no key to match against.
	page, err = Apply(rows, Query{Search: "al", Fields: []string{"colour"}}, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if page.Total != 0 {
		t.Errorf("Total = %d, want 0", page.Total)
	}
}

func TestApply_OffsetPastEnd(t *testing.T) {
	page, err := Apply(rows, Query{Limit: 10, Offset: 50}, schema)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(page.Items) != 0 || page.Total != 5 || page.Offset != 5 {
		t.Errorf("page = %+v", page)
	}
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	before := slices.Clone(rows)
	_, _ = Apply(rows, Query{SortBy: "score"}, schema)
	if !slices.Equal(names(rows), names(before)) {
		t.Error("input reordered")
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Query
		want Query
	}{
		{Query{}, Query{Limit: 20}},
		{Query{Limit: 500, Offset: -3}, Query{Limit: 50}},
		{Query{Limit: 7, Offset: 4}, Query{Limit: 7, Offset: 4}},
	}
	for _, tt := range tests {
		got := tt.in.Normalize(20, 50)
		if got.Limit != tt.want.Limit || got.Offset != tt.want.Offset {
			t.Errorf("Normalize(%+v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
	if got := (Query{}).Normalize(0, 0); got.Limit != DefaultLimit {
		t.Errorf("fallback limit = %d", got.Limit)
	}
}
