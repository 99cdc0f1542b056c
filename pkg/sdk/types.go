package cmsdash

import "time"

// PageStatus is the publication state of a page.
type PageStatus string

// Page status constants.
const (
	StatusDraft     PageStatus = "draft"
	StatusPublished PageStatus = "published"
	StatusArchived  PageStatus = "archived"
)

// Order is a list sort direction.
type Order string

// Sort direction constants. The zero value sorts ascending.
const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// Component is a reusable building block placed on pages.
type Component struct {
	ID          string
	Name        string
	Slug        string
	Category    string
	Description string
	AuthorEmail string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Revision    int
}

// ComponentInput is the content of a new component.
type ComponentInput struct {
	Name        string
	Category    string
	Description string
	AuthorEmail string
}

// ComponentPatch holds the fields to change; nil fields are left as they are.
type ComponentPatch struct {
	Name        *string
	Category    *string
	Description *string
	AuthorEmail *string
}

// Page is a content page.
type Page struct {
	ID           string
	Title        string
	Slug         string
	Content      string
	Excerpt      string
	Status       PageStatus
	AuthorEmail  string
	ComponentIDs []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Revision     int
}

// PageInput is the content of a new page. An empty Slug is derived from
// the title; an empty Status means draft.
type PageInput struct {
	Title        string
	Slug         string
	Content      string
	Excerpt      string
	Status       PageStatus
	AuthorEmail  string
	ComponentIDs []string
}

// PagePatch holds the fields to change; nil fields are left as they are.
type PagePatch struct {
	Title        *string
	Slug         *string
	Content      *string
	Excerpt      *string
	Status       *PageStatus
	AuthorEmail  *string
	ComponentIDs *[]string
}

// ListOptions filters, sorts and windows a list call.
// Fields restricts which fields Search matches; empty means all searchable fields.
type ListOptions struct {
	Search string
	Fields []string
	SortBy string
	Order  Order
	Limit  int
	Offset int
}

// ListResult is one window of a list.
type ListResult[T any] struct {
	Items   []T
	Total   int
	Limit   int
	Offset  int
	HasMore bool
}

// PageRef points at a page.
type PageRef struct {
	ID        string
	Title     string
	UpdatedAt time.Time
}

// Stats summarizes the content store.
type Stats struct {
	Components           int
	Pages                int
	PagesByStatus        map[PageStatus]int
	ComponentsByCategory map[string]int
	LastUpdatedPage      *PageRef
	ComputedAt           time.Time
}
