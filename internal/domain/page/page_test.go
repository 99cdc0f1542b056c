package page

import (
	"errors"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/cmsdash/internal/domain"
)

var now = time.Date(2024, time.June, 1, 8, 30, 0, 0, time.UTC)

func ptr[T any](v T) *T { return &v }

func TestNew_Valid(t *testing.T) {
	p, err := New("p1", Draft{
		Title:        "About Us",
		Content:      "<p>Hello</p>",
		ComponentIDs: []string{"c1", "c2", "c1"},
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Slug() != "about-us" {
		t.Errorf("Slug() = %q", p.Slug())
	}
	if p.Status() != StatusDraft {
		t.Errorf("Status() = %q, want draft", p.Status())
	}
	if !slices.Equal(p.ComponentIDs(), []string{"c1", "c2"}) {
		t.Errorf("ComponentIDs() = %v", p.ComponentIDs())
	}
	if p.Revision() != 1 {
		t.Errorf("Revision() = %d", p.Revision())
	}
}

func TestNew_ExplicitSlugNormalized(t *testing.T) {
	p, err := New("p1", Draft{Title: "Home", Slug: "  Landing Page!  "}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Slug() != "landing-page" {
		t.Errorf("Slug() = %q", p.Slug())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		draft Draft
	}{
		{"blank title", Draft{Title: " "}},
		{"long title", Draft{Title: strings.Repeat("t", MaxTitleLength+1)}},
		{"unsluggable", Draft{Title: "???"}},
		{"huge content", Draft{Title: "x", Content: strings.Repeat("c", MaxContentSize+1)}},
		{"long excerpt", Draft{Title: "x", Excerpt: strings.Repeat("e", MaxExcerptLength+1)}},
		{"bad status", Draft{Title: "x", Status: "live"}},
		{"bad email", Draft{Title: "x", AuthorEmail: "a@b"}},
		{"empty component id", Draft{Title: "x", ComponentIDs: []string{"c1", ""}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("p1", tt.draft, now); !errors.Is(err, domain.ErrInvalidSchema) {
				t.Fatalf("expected ErrInvalidSchema, got %v", err)
			}
		})
	}
}

func TestComponentIDs_ReturnsCopy(t *testing.T) {
	p, _ := New("p1", Draft{Title: "x", ComponentIDs: []string{"c1"}}, now)
	ids := p.ComponentIDs()
	ids[0] = "mutated"
	if p.ComponentIDs()[0] != "c1" {
		t.Error("ComponentIDs mutation leaked into page")
	}
}

func TestApply_KeepsSlugOnTitleChange(t *testing.T) {
	p, _ := New("p1", Draft{Title: "Pricing"}, now)
	patch, err := NewPatch(PatchFields{Title: ptr("Plans & Pricing"), Status: ptr(StatusPublished)})
	if err != nil {
		t.Fatalf("NewPatch: %v", err)
	}
	later := now.Add(2 * time.Hour)

	got, err := p.Apply(patch, later)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Title() != "Plans & Pricing" || got.Slug() != "pricing" {
		t.Errorf("title/slug = %q/%q", got.Title(), got.Slug())
	}
	if got.Status() != StatusPublished {
		t.Errorf("Status() = %q", got.Status())
	}
	if got.Revision() != 2 || !got.UpdatedAt().Equal(later) || !got.CreatedAt().Equal(now) {
		t.Errorf("revision/timestamps = %d %v %v", got.Revision(), got.CreatedAt(), got.UpdatedAt())
	}
}

func TestApply_SlugAndComponents(t *testing.T) {
	p, _ := New("p1", Draft{Title: "Blog", ComponentIDs: []string{"c1"}}, now)
	patch, _ := NewPatch(PatchFields{Slug: ptr("News"), ComponentIDs: ptr([]string{})})

	got, err := p.Apply(patch, now)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Slug() != "news" {
		t.Errorf("Slug() = %q", got.Slug())
	}
	if len(got.ComponentIDs()) != 0 {
		t.Errorf("ComponentIDs() = %v, want empty", got.ComponentIDs())
	}
}

func TestNewPatch_Invalid(t *testing.T) {
	if _, err := NewPatch(PatchFields{}); !errors.Is(err, domain.ErrInvalidSchema) {
		t.Errorf("empty patch: got %v", err)
	}
	if _, err := NewPatch(PatchFields{Status: ptr(Status("gone"))}); !errors.Is(err, domain.ErrInvalidSchema) {
		t.Errorf("bad status: got %v", err)
	}
}

func TestParseStatus(t *testing.T) {
	for in, want := range map[string]Status{"": StatusDraft, "published": StatusPublished, "archived": StatusArchived} {
		got, err := ParseStatus(in)
		if err != nil || got != want {
			t.Errorf("ParseStatus(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := ParseStatus("Published"); err == nil {
		t.Error("expected error for wrong case")
	}
}
