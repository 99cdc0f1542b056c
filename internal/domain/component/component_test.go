package component

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/cmsdash/internal/domain"
)

var now = time.Date(2024, time.May, 4, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

func TestNew_Valid(t *testing.T) {
	c, err := New("c1", Draft{
		Name:        "Hero Banner",
		Category:    "Marketing Blocks",
		Description: "Top of page",
		AuthorEmail: "ana@example.com",
	}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ID() != "c1" || c.Name() != "Hero Banner" {
		t.Errorf("ID/Name = %q/%q", c.ID(), c.Name())
	}
	if c.Slug() != "hero-banner" {
		t.Errorf("Slug() = %q", c.Slug())
	}
	if c.Category() != "marketing-blocks" {
		t.Errorf("Category() = %q", c.Category())
	}
	if c.Revision() != 1 {
		t.Errorf("Revision() = %d", c.Revision())
	}
	if !c.CreatedAt().Equal(now) || !c.UpdatedAt().Equal(now) {
		t.Errorf("timestamps = %v/%v", c.CreatedAt(), c.UpdatedAt())
	}
}

func TestNew_DefaultCategory(t *testing.T) {
	c, err := New("c1", Draft{Name: "Footer"}, now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Category() != DefaultCategory {
		t.Errorf("Category() = %q, want %q", c.Category(), DefaultCategory)
	}
	if c.AuthorEmail() != "" {
		t.Errorf("AuthorEmail() = %q", c.AuthorEmail())
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		draft Draft
	}{
		{"empty id", "", Draft{Name: "x"}},
		{"blank name", "c1", Draft{Name: "   "}},
		{"symbol-only name", "c1", Draft{Name: "!!!"}},
		{"long name", "c1", Draft{Name: strings.Repeat("a", MaxNameLength+1)}},
		{"long description", "c1", Draft{Name: "x", Description: strings.Repeat("d", MaxDescriptionLength+1)}},
		{"bad email", "c1", Draft{Name: "x", AuthorEmail: "not-an-email"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.id, tt.draft, now)
			if !errors.Is(err, domain.ErrInvalidSchema) {
				t.Fatalf("expected ErrInvalidSchema, got %v", err)
			}
		})
	}
}

func TestApply(t *testing.T) {
	c, _ := New("c1", Draft{Name: "Card", AuthorEmail: "a@b.co"}, now)
	later := now.Add(time.Hour)

	p, err := NewPatch(strPtr("Feature Card"), nil, nil, strPtr(""))
	if err != nil {
		t.Fatalf("NewPatch: %v", err)
	}
	got, err := c.Apply(p, later)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if got.Name() != "Feature Card" || got.Slug() != "feature-card" {
		t.Errorf("name/slug = %q/%q", got.Name(), got.Slug())
	}
	if got.AuthorEmail() != "" {
		t.Errorf("email not cleared: %q", got.AuthorEmail())
	}
	if got.Revision() != 2 {
		t.Errorf("Revision() = %d, want 2", got.Revision())
	}
	if !got.CreatedAt().Equal(now) || !got.UpdatedAt().Equal(later) {
		t.Errorf("timestamps = %v/%v", got.CreatedAt(), got.UpdatedAt())
	}
	if c.Name() != "Card" || c.Revision() != 1 {
		t.Error("Apply mutated the receiver")
	}
}

func TestApply_Invalid(t *testing.T) {
	c, _ := New("c1", Draft{Name: "Card"}, now)
	p, _ := NewPatch(nil, nil, nil, strPtr("nope"))
	if _, err := c.Apply(p, now); !errors.Is(err, domain.ErrInvalidSchema) {
		t.Fatalf("expected ErrInvalidSchema, got %v", err)
	}
}

func TestNewPatch_Empty(t *testing.T) {
	if _, err := NewPatch(nil, nil, nil, nil); !errors.Is(err, domain.ErrInvalidSchema) {
		t.Fatalf("expected ErrInvalidSchema, got %v", err)
	}
}

func TestReconstruct(t *testing.T) {
	c := Reconstruct("c9", "Nav", "nav", "layout", "desc", "", now, now.Add(time.Minute), 7)
	if c.ID() != "c9" || c.Slug() != "nav" || c.Category() != "layout" || c.Revision() != 7 {
		t.Errorf("unexpected component: %+v", c)
	}
	if d := c.Draft(); d.Name != "Nav" || d.Description != "desc" {
		t.Errorf("Draft() = %+v", d)
	}
}
