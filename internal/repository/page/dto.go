package page

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
)

// pageToHash converts a Page to HSET fields. Empty optional fields are
// omitted; component ids are stored as a JSON array.
func pageToHash(p dompage.Page) (map[string]string, error) {
	m := map[string]string{
		"id":         p.ID(),
		"title":      p.Title(),
		"slug":       p.Slug(),
		"status":     string(p.Status()),
		"created_at": strconv.FormatInt(p.CreatedAt().UnixMilli(), 10),
		"updated_at": strconv.FormatInt(p.UpdatedAt().UnixMilli(), 10),
		"revision":   strconv.Itoa(p.Revision()),
	}
	if v := p.Content(); v != "" {
		m["content"] = v
	}
	if v := p.Excerpt(); v != "" {
		m["excerpt"] = v
	}
	if v := p.AuthorEmail(); v != "" {
		m["author_email"] = v
	}
	if ids := p.ComponentIDs(); len(ids) > 0 {
		data, err := json.Marshal(ids)
		if err != nil {
			return nil, fmt.Errorf("marshal component ids: %w", err)
		}
		m["component_ids"] = string(data)
	}
	return m, nil
}

// clearedFields lists the optional fields that pageToHash omits for p.
func clearedFields(p dompage.Page) []string {
	var out []string
	if p.Content() == "" {
		out = append(out, "content")
	}
	if p.Excerpt() == "" {
		out = append(out, "excerpt")
	}
	if p.AuthorEmail() == "" {
		out = append(out, "author_email")
	}
	if len(p.ComponentIDs()) == 0 {
		out = append(out, "component_ids")
	}
	return out
}

// pageFromHash hydrates a Page from an HGETALL result map.
func pageFromHash(m map[string]string) (dompage.Page, error) {
	createdAt, err := parseMillis(m["created_at"])
	if err != nil {
		return dompage.Page{}, fmt.Errorf("invalid created_at: %w", err)
	}
	updatedAt, err := parseMillis(m["updated_at"])
	if err != nil {
		updatedAt = createdAt
	}

	var ids []string
	if raw := m["component_ids"]; raw != "" {
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return dompage.Page{}, fmt.Errorf("unmarshal component ids: %w", err)
		}
	}

	revision := 1
	if revStr, ok := m["revision"]; ok && revStr != "" {
		if parsed, err := strconv.Atoi(revStr); err == nil {
			revision = parsed
		}
	}

	status := dompage.Status(m["status"])
	if status == "" {
		status = dompage.StatusDraft
	}

	return dompage.Reconstruct(m["id"], dompage.Draft{
		Title:        m["title"],
		Slug:         m["slug"],
		Content:      m["content"],
		Excerpt:      m["excerpt"],
		Status:       status,
		AuthorEmail:  m["author_email"],
		ComponentIDs: ids,
	}, createdAt, updatedAt, revision), nil
}

func parseMillis(s string) (time.Time, error) {
	ms, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.UnixMilli(ms).UTC(), nil
}
