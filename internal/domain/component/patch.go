package component

import "github.com/kailas-cloud/cmsdash/internal/domain"

// Patch is a partial component update. Nil fields are unchanged; an empty
// author email clears it.
type Patch struct {
	name        *string
	category    *string
	description *string
	authorEmail *string
}

// NewPatch creates a Patch. At least one field must be provided.
func NewPatch(name, category, description, authorEmail *string) (Patch, error) {
	if name == nil && category == nil && description == nil && authorEmail == nil {
		return Patch{}, domain.Invalid("at least one field must be provided")
	}
	return Patch{name: name, category: category, description: description, authorEmail: authorEmail}, nil
}

// Name returns the new name, or nil if unchanged.
func (p Patch) Name() *string { return p.name }

// Category returns the new category, or nil if unchanged.
func (p Patch) Category() *string { return p.category }

// Description returns the new description, or nil if unchanged.
func (p Patch) Description() *string { return p.description }

// AuthorEmail returns the new author email, or nil if unchanged.
func (p Patch) AuthorEmail() *string { return p.authorEmail }
