package component

import (
	"fmt"
	"strconv"
	"time"

	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
)

// optionalFields are omitted from the hash when empty.
var optionalFields = []string{"description", "author_email"}

// componentToHash converts a Component to HSET fields. It also returns the
// optional fields that are empty and must be removed from an existing hash.
func componentToHash(c domcomp.Component) (fields map[string]string, cleared []string) {
	fields = map[string]string{
		"id":         c.ID(),
		"name":       c.Name(),
		"slug":       c.Slug(),
		"category":   c.Category(),
		"created_at": strconv.FormatInt(c.CreatedAt().UnixMilli(), 10),
		"updated_at": strconv.FormatInt(c.UpdatedAt().UnixMilli(), 10),
		"revision":   strconv.Itoa(c.Revision()),
	}
	optional := map[string]string{
		"description":  c.Description(),
		"author_email": c.AuthorEmail(),
	}
	for _, name := range optionalFields {
		if v := optional[name]; v != "" {
			fields[name] = v
		} else {
			cleared = append(cleared, name)
		}
	}
	return fields, cleared
}

// componentFromHash hydrates a Component from an HGETALL result map.
func componentFromHash(m map[string]string) (domcomp.Component, error) {
	createdAt, err := parseMillis(m["created_at"])
	if err != nil {
		return domcomp.Component{}, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := parseMillis(m["updated_at"])
	if err != nil {
		updatedAt = createdAt
	}

	revision := 1
	if revStr, ok := m["revision"]; ok && revStr != "" {
		if parsed, err := strconv.Atoi(revStr); err == nil {
			revision = parsed
		}
	}

	category := m["category"]
	if category == "" {
		category = domcomp.DefaultCategory
	}

	return domcomp.Reconstruct(
		m["id"], m["name"], m["slug"], category, m["description"], m["author_email"],
		createdAt, updatedAt, revision,
	), nil
}

func parseMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}
