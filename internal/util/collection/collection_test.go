package collection

import (
	"errors"
	"fmt"
	"slices"
	"testing"
)

type item struct {
	name     string
	category string
	rank     int
	note     *string
}

func strPtr(s string) *string { return &s }

func names(items []item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.name
	}
	return out
}

var byRank = Key(func(i item) int { return i.rank })

func fixture() []item {
	return []item{
		{name: "hero", category: "layout", rank: 2},
		{name: "footer", category: "layout", rank: 1, note: strPtr("Sticky bottom bar")},
		{name: "gallery", category: "media", rank: 3},
		{name: "header", category: "layout", rank: 1},
		{name: "video", category: "Media", rank: 2, note: strPtr("autoplay off")},
	}
}

func TestSortByKey_Asc(t *testing.T) {
	got := names(SortByKey(fixture(), byRank, Asc))
	want := []string{"footer", "header", "hero", "video", "gallery"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortByKey_DescIsStable(t *testing.T) {
	got := names(SortByKey(fixture(), byRank, Desc))
	want := []string{"gallery", "hero", "video", "footer", "header"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortByKey_ZeroOrderIsAsc(t *testing.T) {
	byName := Key(func(i item) string { return i.name })
	got := names(SortByKey(fixture(), byName, ""))
	want := []string{"footer", "gallery", "header", "hero", "video"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestSortByKey_DoesNotMutateInput(t *testing.T) {
	in := fixture()
	before := names(in)
	_ = SortByKey(in, byRank, Desc)
	if !slices.Equal(names(in), before) {
		t.Errorf("input mutated: %v", names(in))
	}
}

func TestSortByKey_ReverseOfAscEqualsDesc(t *testing.T) {
	byName := Key(func(i item) string { return i.name })
	asc := SortByKey(fixture(), byName, Asc)
	slices.Reverse(asc)
	desc := SortByKey(fixture(), byName, Desc)
	if !slices.Equal(names(asc), names(desc)) {
		t.Errorf("reversed asc %v != desc %v", names(asc), names(desc))
	}
}

func TestSortByKey_NilComparatorCopies(t *testing.T) {
	in := fixture()
	got := SortByKey(in, nil, Asc)
	if !slices.Equal(names(got), names(in)) {
		t.Errorf("expected unchanged order, got %v", names(got))
	}
	got[0].name = "changed"
	if in[0].name == "changed" {
		t.Error("result shares backing array with input")
	}
}

func TestParseOrder(t *testing.T) {
	for in, want := range map[string]Order{"": Asc, "asc": Asc, "desc": Desc} {
		got, err := ParseOrder(in)
		if err != nil || got != want {
			t.Errorf("ParseOrder(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := ParseOrder("DESC"); !errors.Is(err, ErrInvalidOrder) {
		t.Errorf("expected ErrInvalidOrder, got %v", err)
	}
}

var searchFields = SearchFields[item]{
	"name":     Text(func(i item) string { return i.name }),
	"category": Text(func(i item) string { return i.category }),
	"rank":     Number(func(i item) int { return i.rank }),
	"note":     Optional(func(i item) *string { return i.note }),
}

func TestFilterBySearch_EmptyTermReturnsInput(t *testing.T) {
	in := fixture()
	got := FilterBySearch(in, "", searchFields.Keys()...)
	if len(got) != len(in) || &got[0] != &in[0] {
		t.Error("empty term should return the input slice")
	}
}

func TestFilterBySearch_CaseInsensitiveAnyKey(t *testing.T) {
	got := names(FilterBySearch(fixture(), "MEDIA", searchFields.Keys("name", "category")...))
	want := []string{"gallery", "video"}
	if !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestFilterBySearch_NilFieldNeverMatches(t *testing.T) {
	got := names(FilterBySearch(fixture(), "bar", searchFields.Keys("note")...))
	if !slices.Equal(got, []string{"footer"}) {
		t.Errorf("got %v", got)
	}
}

func TestFilterBySearch_NumberField(t *testing.T) {
	got := names(FilterBySearch(fixture(), "3", searchFields.Keys("rank")...))
	if !slices.Equal(got, []string{"gallery"}) {
		t.Errorf("got %v", got)
	}
}

type label struct{ text string }

func (l *label) String() string { return l.text }

type labelled struct {
	id    int
	label *label
	shown fmt.Stringer
}

func TestFilterBySearch_StringerNilNeverMatches(t *testing.T) {
	in := []labelled{
		{id: 1},
		{id: 2, label: &label{"Featured"}},
		{id: 3, shown: (*label)(nil)},
		{id: 4, shown: &label{"featured item"}},
	}
	keys := []SearchKey[labelled]{
		Stringer(func(l labelled) *label { return l.label }),
		Stringer(func(l labelled) fmt.Stringer { return l.shown }),
	}

	got := FilterBySearch(in, "feat", keys...)
	ids := make([]int, len(got))
	for i, l := range got {
		ids[i] = l.id
	}
	if !slices.Equal(ids, []int{2, 4}) {
		t.Errorf("got ids %v, want [2 4]", ids)
	}
}

func TestFilterBySearch_UnknownKeysSkipped(t *testing.T) {
	keys := searchFields.Keys("missing", "name")
	if len(keys) != 1 {
		t.Fatalf("expected 1 key, got %d", len(keys))
	}
	if got := FilterBySearch(fixture(), "hero", searchFields.Keys("missing")...); len(got) != 0 {
		t.Errorf("no usable keys should match nothing, got %v", names(got))
	}
}

func TestFilterBySearch_SubsetPreservesOrder(t *testing.T) {
	in := fixture()
	for _, term := range []string{"e", "o", "la", "x", "1"} {
		got := FilterBySearch(in, term, searchFields.Keys()...)
		j := 0
		for _, g := range got {
			for j < len(in) && in[j].name != g.name {
				j++
			}
			if j == len(in) {
				t.Fatalf("term %q: result %v is not an ordered subset", term, names(got))
			}
			j++
		}
	}
}

func TestSortFields_Lookup(t *testing.T) {
	sf := SortFields[item]{"rank": byRank}
	if _, ok := sf.Lookup("rank"); !ok {
		t.Error("expected rank comparator")
	}
	if _, ok := sf.Lookup("name"); ok {
		t.Error("unexpected name comparator")
	}
}
