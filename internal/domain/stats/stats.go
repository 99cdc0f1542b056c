package stats

import (
	"time"

	"github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/page"
)

// PageRef points at a page without carrying its content.
type PageRef struct {
	ID        string
	Title     string
	UpdatedAt time.Time
}

// Snapshot is a point-in-time summary of the content store.
type Snapshot struct {
	Components           int
	Pages                int
	PagesByStatus        map[page.Status]int
	ComponentsByCategory map[string]int
	LastUpdatedPage      *PageRef
	ComputedAt           time.Time
}

// Compute summarizes components and pages as of now. Every status appears
// in PagesByStatus, with zero counts included.
func Compute(components []component.Component, pages []page.Page, now time.Time) Snapshot {
	s := Snapshot{
		Components:           len(components),
		Pages:                len(pages),
		PagesByStatus:        make(map[page.Status]int, len(page.Statuses)),
		ComponentsByCategory: make(map[string]int),
		ComputedAt:           now,
	}
	for _, st := range page.Statuses {
		s.PagesByStatus[st] = 0
	}
	for _, c := range components {
		s.ComponentsByCategory[c.Category()]++
	}
	for _, p := range pages {
		s.PagesByStatus[p.Status()]++
		if s.LastUpdatedPage == nil || p.UpdatedAt().After(s.LastUpdatedPage.UpdatedAt) {
			s.LastUpdatedPage = &PageRef{ID: p.ID(), Title: p.Title(), UpdatedAt: p.UpdatedAt()}
		}
	}
	return s
}

// IsZero reports whether s was never computed.
func (s Snapshot) IsZero() bool { return s.ComputedAt.IsZero() }
