// Package text holds small string helpers shared by forms and list views.
package text

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// DefaultTruncateLength is the rune budget used by Truncate.
	DefaultTruncateLength = 100
	// DefaultSuffix marks a truncated string.
	DefaultSuffix = "..."
)

// Capitalize uppercases the first rune of s and leaves the rest unchanged.
// Full case mapping applies, so "ßig" becomes "SSig".
func Capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	// A Caser is stateful and must not be shared between goroutines.
	return cases.Upper(language.Und).String(string(r)) + s[size:]
}

// Separators include \v, Unicode spaces and BOM, which RE2's \s leaves out.
var (
	slugStrip    = regexp.MustCompile(`[^\w\s\v\p{Z}\x{FEFF}-]`)
	slugCollapse = regexp.MustCompile(`[\s\v\p{Z}\x{FEFF}_-]+`)
)

// Slugify lowercases s and reduces it to ASCII word characters separated by
// single hyphens, with no leading or trailing hyphen. Slugify is idempotent.
func Slugify(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Truncate is TruncateWith using DefaultSuffix.
func Truncate(s string, length int) string {
	return TruncateWith(s, length, DefaultSuffix)
}

// TruncateWith returns s unchanged when it fits in length runes. Otherwise
// it keeps the first length-len(suffix) runes and appends suffix. When the
// suffix alone is longer than length, nothing of s is kept.
func TruncateWith(s string, length int, suffix string) string {
	if utf8.RuneCountInString(s) <= length {
		return s
	}
	keep := max(length-utf8.RuneCountInString(suffix), 0)
	runes := []rune(s)
	return string(runes[:keep]) + suffix
}
