package page

import "github.com/kailas-cloud/cmsdash/internal/domain"

// Status is the publication state of a page.
type Status string

const (
	// StatusDraft is not visible to readers.
	StatusDraft Status = "draft"
	// StatusPublished is live.
	StatusPublished Status = "published"
	// StatusArchived is retired but kept.
	StatusArchived Status = "archived"
)

// Statuses lists every status in workflow order.
var Statuses = []Status{StatusDraft, StatusPublished, StatusArchived}

// IsValid checks if the status is supported.
func (s Status) IsValid() bool {
	return s == StatusDraft || s == StatusPublished || s == StatusArchived
}

// String implements fmt.Stringer.
func (s Status) String() string { return string(s) }

// ParseStatus validates an external status. Empty means draft.
func ParseStatus(s string) (Status, error) {
	if s == "" {
		return StatusDraft, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", domain.Invalid("invalid page status %q", s)
	}
	return st, nil
}
