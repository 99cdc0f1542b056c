// Package validate holds the input checks shared by the domain layer.
package validate

import (
	"regexp"
	"strings"
)

// emailPattern accepts anything shaped like local@domain.tld. It is
// deliberately permissive: no RFC 5322 parsing, no quoted local parts.
// Whitespace covers \v, Unicode separators and BOM, not only RE2's ASCII \s.
var emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)

// IsValidEmail reports whether s looks like an email address.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsNotEmpty reports whether s has any non-whitespace content.
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}
