package stats

import (
	"testing"
	"time"

	"github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/page"
)

func TestCompute(t *testing.T) {
	base := time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC)
	comps := []component.Component{
		component.Reconstruct("c1", "Hero", "hero", "marketing", "", "", base, base, 1),
		component.Reconstruct("c2", "Nav", "nav", "layout", "", "", base, base, 1),
		component.Reconstruct("c3", "Promo", "promo", "marketing", "", "", base, base, 1),
	}
	pages := []page.Page{
		page.Reconstruct("p1", page.Draft{Title: "Home", Status: page.StatusPublished}, base, base.Add(time.Hour), 2),
		page.Reconstruct("p2", page.Draft{Title: "Blog", Status: page.StatusDraft}, base, base.Add(3*time.Hour), 1),
		page.Reconstruct("p3", page.Draft{Title: "Old", Status: page.StatusPublished}, base, base, 4),
	}
	now := base.Add(24 * time.Hour)

	s := Compute(comps, pages, now)

	if s.Components != 3 || s.Pages != 3 {
		t.Errorf("totals = %d/%d", s.Components, s.Pages)
	}
	if s.ComponentsByCategory["marketing"] != 2 || s.ComponentsByCategory["layout"] != 1 {
		t.Errorf("by category = %v", s.ComponentsByCategory)
	}
	if s.PagesByStatus[page.StatusPublished] != 2 || s.PagesByStatus[page.StatusDraft] != 1 {
		t.Errorf("by status = %v", s.PagesByStatus)
	}
	if n, ok := s.PagesByStatus[page.StatusArchived]; !ok || n != 0 {
		t.Errorf("archived should be present with 0, got %d (%v)", n, ok)
	}
	if s.LastUpdatedPage == nil || s.LastUpdatedPage.ID != "p2" {
		t.Errorf("LastUpdatedPage = %+v", s.LastUpdatedPage)
	}
	if !s.ComputedAt.Equal(now) || s.IsZero() {
		t.Errorf("ComputedAt = %v", s.ComputedAt)
	}
}

func TestCompute_Empty(t *testing.T) {
	s := Compute(nil, nil, time.Now())
	if s.LastUpdatedPage != nil {
		t.Errorf("LastUpdatedPage = %+v, want nil", s.LastUpdatedPage)
	}
	if len(s.PagesByStatus) != len(page.Statuses) {
		t.Errorf("PagesByStatus = %v", s.PagesByStatus)
	}
	if !(Snapshot{}).IsZero() {
		t.Error("zero snapshot should report IsZero")
	}
}
