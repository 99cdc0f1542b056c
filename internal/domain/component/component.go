package component

import (
	"time"
	"unicode/utf8"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	"github.com/kailas-cloud/cmsdash/internal/util/text"
	"github.com/kailas-cloud/cmsdash/internal/util/validate"
)

const (
	// MaxNameLength is the maximum component name length in runes.
	MaxNameLength = 120
	// MaxDescriptionLength is the maximum description length in runes.
	MaxDescriptionLength = 2000
	// DefaultCategory is used when a draft names no category.
	DefaultCategory = "general"
)

// Draft is the caller-supplied content of a new component.
type Draft struct {
	Name        string `json:"name" yaml:"name"`
	Category    string `json:"category,omitempty" yaml:"category"`
	Description string `json:"description,omitempty" yaml:"description"`
	AuthorEmail string `json:"author_email,omitempty" yaml:"author_email"`
}

// Component is a reusable building block placed on pages (immutable value object).
type Component struct {
	id          string
	name        string
	slug        string
	category    string
	description string
	authorEmail string
	createdAt   time.Time
	updatedAt   time.Time
	revision    int
}

// New validates d and creates a Component at revision 1.
// The slug is derived from the name; the category is slugified.
func New(id string, d Draft, now time.Time) (Component, error) {
	if !validate.IsNotEmpty(id) {
		return Component{}, domain.Invalid("component id is required")
	}
	c := Component{id: id, createdAt: now, updatedAt: now, revision: 1}
	if err := c.assign(d); err != nil {
		return Component{}, err
	}
	return c, nil
}

// Reconstruct creates a Component without validation (storage hydration).
func Reconstruct(
	id, name, slug, category, description, authorEmail string,
	createdAt, updatedAt time.Time, revision int,
) Component {
	return Component{
		id: id, name: name, slug: slug, category: category,
		description: description, authorEmail: authorEmail,
		createdAt: createdAt, updatedAt: updatedAt, revision: revision,
	}
}

func (c *Component) assign(d Draft) error {
	if !validate.IsNotEmpty(d.Name) {
		return domain.Invalid("component name is required")
	}
	if utf8.RuneCountInString(d.Name) > MaxNameLength {
		return domain.Invalid("component name too long (max %d)", MaxNameLength)
	}
	slug := text.Slugify(d.Name)
	if slug == "" {
		return domain.Invalid("component name must contain letters or digits")
	}
	category := text.Slugify(d.Category)
	if category == "" {
		category = DefaultCategory
	}
	if utf8.RuneCountInString(d.Description) > MaxDescriptionLength {
		return domain.Invalid("description too long (max %d)", MaxDescriptionLength)
	}
	if d.AuthorEmail != "" && !validate.IsValidEmail(d.AuthorEmail) {
		return domain.Invalid("author email %q is not a valid address", d.AuthorEmail)
	}

	c.name = d.Name
	c.slug = slug
	c.category = category
	c.description = d.Description
	c.authorEmail = d.AuthorEmail
	return nil
}

// ID returns the component identifier.
func (c Component) ID() string { return c.id }

// Name returns the display name.
func (c Component) Name() string { return c.name }

// Slug returns the URL-safe form of the name.
func (c Component) Slug() string { return c.slug }

// Category returns the slugified category.
func (c Component) Category() string { return c.category }

// Description returns the free-form description.
func (c Component) Description() string { return c.description }

// AuthorEmail returns the author address, or "" when unset.
func (c Component) AuthorEmail() string { return c.authorEmail }

// CreatedAt returns the creation time.
func (c Component) CreatedAt() time.Time { return c.createdAt }

// UpdatedAt returns the last modification time.
func (c Component) UpdatedAt() time.Time { return c.updatedAt }

// Revision returns the optimistic concurrency version.
func (c Component) Revision() int { return c.revision }

// Draft returns the editable content of c.
func (c Component) Draft() Draft {
	return Draft{Name: c.name, Category: c.category, Description: c.description, AuthorEmail: c.authorEmail}
}

// Apply returns c with p applied, revalidated, and the revision bumped.
func (c Component) Apply(p Patch, now time.Time) (Component, error) {
	d := c.Draft()
	if p.name != nil {
		d.Name = *p.name
	}
	if p.category != nil {
		d.Category = *p.category
	}
	if p.description != nil {
		d.Description = *p.description
	}
	if p.authorEmail != nil {
		d.AuthorEmail = *p.authorEmail
	}

	next := c
	if err := next.assign(d); err != nil {
		return Component{}, err
	}
	next.updatedAt = now
	next.revision = c.revision + 1
	return next, nil
}
