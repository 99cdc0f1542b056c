package page

import "github.com/kailas-cloud/cmsdash/internal/domain"

// Patch is a partial page update. Nil fields are unchanged.
type Patch struct {
	title        *string
	slug         *string
	content      *string
	excerpt      *string
	status       *Status
	authorEmail  *string
	componentIDs *[]string
}

// PatchFields carries the optional fields of a Patch.
type PatchFields struct {
	Title        *string
	Slug         *string
	Content      *string
	Excerpt      *string
	Status       *Status
	AuthorEmail  *string
	ComponentIDs *[]string
}

// NewPatch validates and creates a Patch. At least one field must be provided.
func NewPatch(f PatchFields) (Patch, error) {
	if f.Title == nil && f.Slug == nil && f.Content == nil && f.Excerpt == nil &&
		f.Status == nil && f.AuthorEmail == nil && f.ComponentIDs == nil {
		return Patch{}, domain.Invalid("at least one field must be provided")
	}
	if f.Content != nil && len(*f.Content) > MaxContentSize {
		return Patch{}, domain.Invalid("content too large (max %d bytes)", MaxContentSize)
	}
	if f.Status != nil && !f.Status.IsValid() {
		return Patch{}, domain.Invalid("invalid page status %q", *f.Status)
	}
	return Patch{
		title: f.Title, slug: f.Slug, content: f.Content, excerpt: f.Excerpt,
		status: f.Status, authorEmail: f.AuthorEmail, componentIDs: f.ComponentIDs,
	}, nil
}

// ComponentIDs returns the new component list, or nil when unchanged.
func (p Patch) ComponentIDs() *[]string { return p.componentIDs }
