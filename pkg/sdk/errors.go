package cmsdash

import "github.com/kailas-cloud/cmsdash/internal/domain"

// Sentinel errors re-exported from the domain layer.
// Use errors.Is() to check.
var (
	ErrNotFound          = domain.ErrNotFound
	ErrAlreadyExists     = domain.ErrAlreadyExists
	ErrInvalidSchema     = domain.ErrInvalidSchema
	ErrInvalidQuery      = domain.ErrInvalidQuery
	ErrRevisionConflict  = domain.ErrRevisionConflict
	ErrAssistantDisabled = domain.ErrAssistantDisabled
)

// RevisionConflictError carries the current revision on a stale update.
// Use errors.As() to extract it.
type RevisionConflictError = domain.RevisionConflictError
