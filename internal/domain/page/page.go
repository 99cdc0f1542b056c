package page

import (
	"slices"
	"time"
	"unicode/utf8"

	"github.com/kailas-cloud/cmsdash/internal/domain"
	"github.com/kailas-cloud/cmsdash/internal/util/text"
	"github.com/kailas-cloud/cmsdash/internal/util/validate"
)

const (
	// MaxTitleLength is the maximum title length in runes.
	MaxTitleLength = 200
	// MaxContentSize is the maximum content size in bytes.
	MaxContentSize = 163840 // 160KB
	// MaxExcerptLength is the maximum excerpt length in runes.
	MaxExcerptLength = 300
	// MaxComponents is the maximum number of components placed on a page.
	MaxComponents = 100
)

// Draft is the editable content of a page. It is a plain record so it can
// be cloned and decoded from seed files.
type Draft struct {
	Title        string   `json:"title" yaml:"title"`
	Slug         string   `json:"slug,omitempty" yaml:"slug"`
	Content      string   `json:"content,omitempty" yaml:"content"`
	Excerpt      string   `json:"excerpt,omitempty" yaml:"excerpt"`
	Status       Status   `json:"status,omitempty" yaml:"status"`
	AuthorEmail  string   `json:"author_email,omitempty" yaml:"author_email"`
	ComponentIDs []string `json:"component_ids,omitempty" yaml:"component_ids"`
}

// Page is the page aggregate (immutable value object).
type Page struct {
	id           string
	title        string
	slug         string
	content      string
	excerpt      string
	status       Status
	authorEmail  string
	componentIDs []string
	createdAt    time.Time
	updatedAt    time.Time
	revision     int
}

// New validates d and creates a Page at revision 1.
// An empty slug is derived from the title; a given slug is normalized.
func New(id string, d Draft, now time.Time) (Page, error) {
	if !validate.IsNotEmpty(id) {
		return Page{}, domain.Invalid("page id is required")
	}
	p := Page{id: id, createdAt: now, updatedAt: now, revision: 1}
	if err := p.assign(d); err != nil {
		return Page{}, err
	}
	return p, nil
}

// Reconstruct creates a Page without validation (storage hydration).
func Reconstruct(
	id string, d Draft, createdAt, updatedAt time.Time, revision int,
) Page {
	return Page{
		id: id, title: d.Title, slug: d.Slug, content: d.Content, excerpt: d.Excerpt,
		status: d.Status, authorEmail: d.AuthorEmail, componentIDs: d.ComponentIDs,
		createdAt: createdAt, updatedAt: updatedAt, revision: revision,
	}
}

func (p *Page) assign(d Draft) error {
	if !validate.IsNotEmpty(d.Title) {
		return domain.Invalid("page title is required")
	}
	if utf8.RuneCountInString(d.Title) > MaxTitleLength {
		return domain.Invalid("page title too long (max %d)", MaxTitleLength)
	}

	slug := d.Slug
	if slug == "" {
		slug = d.Title
	}
	slug = text.Slugify(slug)
	if slug == "" {
		return domain.Invalid("page slug must contain letters or digits")
	}

	if len(d.Content) > MaxContentSize {
		return domain.Invalid("content too large (max %d bytes)", MaxContentSize)
	}
	if utf8.RuneCountInString(d.Excerpt) > MaxExcerptLength {
		return domain.Invalid("excerpt too long (max %d)", MaxExcerptLength)
	}

	status := d.Status
	if status == "" {
		status = StatusDraft
	}
	if !status.IsValid() {
		return domain.Invalid("invalid page status %q", d.Status)
	}

	if d.AuthorEmail != "" && !validate.IsValidEmail(d.AuthorEmail) {
		return domain.Invalid("author email %q is not a valid address", d.AuthorEmail)
	}

	ids, err := normalizeComponentIDs(d.ComponentIDs)
	if err != nil {
		return err
	}

	p.title = d.Title
	p.slug = slug
	p.content = d.Content
	p.excerpt = d.Excerpt
	p.status = status
	p.authorEmail = d.AuthorEmail
	p.componentIDs = ids
	return nil
}

// normalizeComponentIDs drops duplicates, keeping first occurrences in order.
func normalizeComponentIDs(in []string) ([]string, error) {
	if len(in) == 0 {
		return nil, nil
	}
	out := make([]string, 0, len(in))
	for _, id := range in {
		if !validate.IsNotEmpty(id) {
			return nil, domain.Invalid("component id must not be empty")
		}
		if !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	if len(out) > MaxComponents {
		return nil, domain.Invalid("too many components (max %d)", MaxComponents)
	}
	return out, nil
}

// ID returns the page identifier.
func (p Page) ID() string { return p.id }

// Title returns the page title.
func (p Page) Title() string { return p.title }

// Slug returns the unique URL slug.
func (p Page) Slug() string { return p.slug }

// Content returns the page body.
func (p Page) Content() string { return p.content }

// Excerpt returns the short summary, or "" when unset.
func (p Page) Excerpt() string { return p.excerpt }

// Status returns the publication state.
func (p Page) Status() Status { return p.status }

// AuthorEmail returns the author address, or "" when unset.
func (p Page) AuthorEmail() string { return p.authorEmail }

// ComponentIDs returns the ids of placed components in display order.
func (p Page) ComponentIDs() []string { return slices.Clone(p.componentIDs) }

// CreatedAt returns the creation time.
func (p Page) CreatedAt() time.Time { return p.createdAt }

// UpdatedAt returns the last modification time.
func (p Page) UpdatedAt() time.Time { return p.updatedAt }

// Revision returns the optimistic concurrency version.
func (p Page) Revision() int { return p.revision }

// Draft returns the editable content of p. The component id slice is shared;
// callers that mutate it must clone first.
func (p Page) Draft() Draft {
	return Draft{
		Title: p.title, Slug: p.slug, Content: p.content, Excerpt: p.excerpt,
		Status: p.status, AuthorEmail: p.authorEmail, ComponentIDs: p.componentIDs,
	}
}

// Apply returns p with patch applied, revalidated, and the revision bumped.
// Changing the title keeps the existing slug unless the patch sets one.
func (p Page) Apply(patch Patch, now time.Time) (Page, error) {
	d := p.Draft()
	if patch.title != nil {
		d.Title = *patch.title
	}
	if patch.slug != nil {
		d.Slug = *patch.slug
	}
	if patch.content != nil {
		d.Content = *patch.content
	}
	if patch.excerpt != nil {
		d.Excerpt = *patch.excerpt
	}
	if patch.status != nil {
		d.Status = *patch.status
	}
	if patch.authorEmail != nil {
		d.AuthorEmail = *patch.authorEmail
	}
	if patch.componentIDs != nil {
		d.ComponentIDs = *patch.componentIDs
	}

	next := p
	if err := next.assign(d); err != nil {
		return Page{}, err
	}
	next.updatedAt = now
	next.revision = p.revision + 1
	return next, nil
}
