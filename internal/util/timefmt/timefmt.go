// Package timefmt renders dates for dashboard list views: short localized
// dates and coarse "time ago" phrases.
package timefmt

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// DefaultLocale is used when no locale is given or it cannot be matched.
const DefaultLocale = "en-US"

// InvalidDate is returned by FormatDate for inputs that are not dates.
// Callers that need a hard failure use Parse instead.
const InvalidDate = "Invalid Date"

// ErrInvalidDate signals an unparsable date-like value.
var ErrInvalidDate = errors.New("invalid date")

// DateLike is an ISO-8601 string, a unix-millis timestamp, or a time value.
type DateLike interface {
	~string | ~int | ~int64 | time.Time
}

// isoLayouts are tried in order. Date-only values are UTC, date-times
// without an offset are local time.
var isoLayouts = []struct {
	layout string
	utc    bool
}{
	{time.RFC3339Nano, false},
	{"2006-01-02", true},
	{"2006-01-02T15:04:05", false},
	{"2006-01-02T15:04", false},
	{"2006-01-02 15:04:05", false},
	{time.RFC1123Z, false},
	{time.RFC1123, false},
}

// Parse converts a date-like value to a time.
// Integers are unix milliseconds.
func Parse[D DateLike](v D) (time.Time, error) {
	if t, ok := any(v).(time.Time); ok {
		if t.IsZero() {
			return time.Time{}, ErrInvalidDate
		}
		return t, nil
	}

	// Named string and integer types share the underlying kinds.
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int64:
		return time.UnixMilli(rv.Int()), nil
	case reflect.String:
		return parseString(rv.String())
	default:
		return time.Time{}, ErrInvalidDate
	}
}

func parseString(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	for _, l := range isoLayouts {
		loc := time.Local
		if l.utc {
			loc = time.UTC
		}
		if t, err := time.ParseInLocation(l.layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

// FormatDate renders v as a short date with numeric year, abbreviated month
// and numeric day, ordered for the locale ("Jan 5, 2024" for en-US).
// The date is rendered in the value's own location. Unparsable values
// yield InvalidDate; unknown locales fall back to DefaultLocale.
func FormatDate[D DateLike](v D, locale string) string {
	t, err := Parse(v)
	if err != nil {
		return InvalidDate
	}
	return lookupFormat(locale).render(t)
}

// intervals are ordered from the coarsest unit down.
var intervals = []struct {
	unit    string
	seconds int64
}{
	{"year", 31536000},
	{"month", 2592000},
	{"week", 604800},
	{"day", 86400},
	{"hour", 3600},
	{"minute", 60},
}

// JustNow is returned by TimeAgo when less than a minute has elapsed.
const JustNow = "Just now"

// TimeAgo describes how long ago v was, relative to the wall clock.
func TimeAgo[D DateLike](v D) string {
	return TimeAgoAt(v, time.Now())
}

// TimeAgoAt describes how long before now v was, using the coarsest unit
// with a count of at least one ("3 days ago"). Future and invalid values
// yield JustNow.
func TimeAgoAt[D DateLike](v D, now time.Time) string {
	t, err := Parse(v)
	if err != nil {
		return JustNow
	}
	// Millisecond difference, not now.Sub, which saturates near 292 years.
	seconds := (now.UnixMilli() - t.UnixMilli()) / 1000
	for _, iv := range intervals {
		n := seconds / iv.seconds
		if n >= 1 {
			return plural(n, iv.unit) + " ago"
		}
	}
	return JustNow
}

func plural(n int64, unit string) string {
	s := strconv.FormatInt(n, 10) + " " + unit
	if n != 1 {
		s += "s"
	}
	return s
}
