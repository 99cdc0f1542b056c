package chi

import (
	"time"

	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
	domstats "github.com/kailas-cloud/cmsdash/internal/domain/stats"
	"github.com/kailas-cloud/cmsdash/internal/util/text"
	"github.com/kailas-cloud/cmsdash/internal/util/timefmt"
)

// summaryLength caps the list-view summary, in runes.
const summaryLength = 80

// display carries request-scoped rendering inputs.
type display struct {
	locale string
	now    time.Time
}

// --- Requests ---

type componentCreateRequest struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`
	AuthorEmail string `json:"author_email"`
}

type componentPatchRequest struct {
	Name        *string `json:"name"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	AuthorEmail *string `json:"author_email"`
}

type pageCreateRequest struct {
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Content      string   `json:"content"`
	Excerpt      string   `json:"excerpt"`
	Status       string   `json:"status"`
	AuthorEmail  string   `json:"author_email"`
	ComponentIDs []string `json:"component_ids"`
}

type pagePatchRequest struct {
	Title        *string   `json:"title"`
	Slug         *string   `json:"slug"`
	Content      *string   `json:"content"`
	Excerpt      *string   `json:"excerpt"`
	Status       *string   `json:"status"`
	AuthorEmail  *string   `json:"author_email"`
	ComponentIDs *[]string `json:"component_ids"`
}

func (req componentCreateRequest) draft() domcomp.Draft {
	return domcomp.Draft{
		Name: req.Name, Category: req.Category, Description: req.Description, AuthorEmail: req.AuthorEmail,
	}
}

func (req componentPatchRequest) patch() (domcomp.Patch, error) {
	return domcomp.NewPatch(req.Name, req.Category, req.Description, req.AuthorEmail)
}

func (req pageCreateRequest) draft() dompage.Draft {
	return dompage.Draft{
		Title: req.Title, Slug: req.Slug, Content: req.Content, Excerpt: req.Excerpt,
		Status: dompage.Status(req.Status), AuthorEmail: req.AuthorEmail, ComponentIDs: req.ComponentIDs,
	}
}

func (req pagePatchRequest) patch() (dompage.Patch, error) {
	f := dompage.PatchFields{
		Title: req.Title, Slug: req.Slug, Content: req.Content, Excerpt: req.Excerpt,
		AuthorEmail: req.AuthorEmail, ComponentIDs: req.ComponentIDs,
	}
	if req.Status != nil {
		st, err := dompage.ParseStatus(*req.Status)
		if err != nil {
			return dompage.Patch{}, err
		}
		f.Status = &st
	}
	return dompage.NewPatch(f)
}

// --- Responses ---

type componentResponse struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Slug           string    `json:"slug"`
	Category       string    `json:"category"`
	CategoryLabel  string    `json:"category_label"`
	Description    string    `json:"description,omitempty"`
	Summary        string    `json:"summary,omitempty"`
	AuthorEmail    string    `json:"author_email,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	CreatedDisplay string    `json:"created_display"`
	UpdatedAgo     string    `json:"updated_ago"`
	Revision       int       `json:"revision"`
}

type pageResponse struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Slug           string    `json:"slug"`
	Content        string    `json:"content,omitempty"`
	Excerpt        string    `json:"excerpt,omitempty"`
	Summary        string    `json:"summary,omitempty"`
	Status         string    `json:"status"`
	StatusLabel    string    `json:"status_label"`
	AuthorEmail    string    `json:"author_email,omitempty"`
	ComponentIDs   []string  `json:"component_ids"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	CreatedDisplay string    `json:"created_display"`
	UpdatedAgo     string    `json:"updated_ago"`
	Revision       int       `json:"revision"`
}

type listResponse[T any] struct {
	Items   []T  `json:"items"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

type pageRefResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	UpdatedAt  time.Time `json:"updated_at"`
	UpdatedAgo string    `json:"updated_ago"`
}

type statsResponse struct {
	Components           int              `json:"components"`
	Pages                int              `json:"pages"`
	PagesByStatus        map[string]int   `json:"pages_by_status"`
	ComponentsByCategory map[string]int   `json:"components_by_category"`
	LastUpdatedPage      *pageRefResponse `json:"last_updated_page,omitempty"`
	ComputedAt           time.Time        `json:"computed_at"`
}

type healthResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Version string            `json:"version"`
}

func componentToResponse(c domcomp.Component, d display) componentResponse {
	return componentResponse{
		ID:             c.ID(),
		Name:           c.Name(),
		Slug:           c.Slug(),
		Category:       c.Category(),
		CategoryLabel:  text.Capitalize(c.Category()),
		Description:    c.Description(),
		Summary:        text.Truncate(c.Description(), summaryLength),
		AuthorEmail:    c.AuthorEmail(),
		CreatedAt:      c.CreatedAt().UTC(),
		UpdatedAt:      c.UpdatedAt().UTC(),
		CreatedDisplay: timefmt.FormatDate(c.CreatedAt().UTC(), d.locale),
		UpdatedAgo:     timefmt.TimeAgoAt(c.UpdatedAt(), d.now),
		Revision:       c.Revision(),
	}
}

func pageToResponse(p dompage.Page, d display) pageResponse {
	summary := p.Excerpt()
	if summary == "" {
		summary = p.Content()
	}
	ids := p.ComponentIDs()
	if ids == nil {
		ids = []string{}
	}
	return pageResponse{
		ID:             p.ID(),
		Title:          p.Title(),
		Slug:           p.Slug(),
		Content:        p.Content(),
		Excerpt:        p.Excerpt(),
		Summary:        text.Truncate(summary, summaryLength),
		Status:         p.Status().String(),
		StatusLabel:    text.Capitalize(p.Status().String()),
		AuthorEmail:    p.AuthorEmail(),
		ComponentIDs:   ids,
		CreatedAt:      p.CreatedAt().UTC(),
		UpdatedAt:      p.UpdatedAt().UTC(),
		CreatedDisplay: timefmt.FormatDate(p.CreatedAt().UTC(), d.locale),
		UpdatedAgo:     timefmt.TimeAgoAt(p.UpdatedAt(), d.now),
		Revision:       p.Revision(),
	}
}

func toListResponse[T, R any](page listing.Page[T], conv func(T) R) listResponse[R] {
	items := make([]R, len(page.Items))
	for i, it := range page.Items {
		items[i] = conv(it)
	}
	return listResponse[R]{
		Items:   items,
		Total:   page.Total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: page.HasMore(),
	}
}

func statsToResponse(s domstats.Snapshot, d display) statsResponse {
	byStatus := make(map[string]int, len(s.PagesByStatus))
	for st, n := range s.PagesByStatus {
		byStatus[st.String()] = n
	}
	resp := statsResponse{
		Components:           s.Components,
		Pages:                s.Pages,
		PagesByStatus:        byStatus,
		ComponentsByCategory: s.ComponentsByCategory,
		ComputedAt:           s.ComputedAt.UTC(),
	}
	if ref := s.LastUpdatedPage; ref != nil {
		resp.LastUpdatedPage = &pageRefResponse{
			ID:         ref.ID,
			Title:      ref.Title,
			UpdatedAt:  ref.UpdatedAt.UTC(),
			UpdatedAgo: timefmt.TimeAgoAt(ref.UpdatedAt, d.now),
		}
	}
	return resp
}
