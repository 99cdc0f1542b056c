package cmsdash

import (
	domcomp "github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	dompage "github.com/kailas-cloud/cmsdash/internal/domain/page"
	domstats "github.com/kailas-cloud/cmsdash/internal/domain/stats"
	"github.com/kailas-cloud/cmsdash/internal/util/collection"
)

func toInternalQuery(o ListOptions) listing.Query {
	return listing.Query{
		Search: o.Search,
		Fields: o.Fields,
		SortBy: o.SortBy,
		Order:  collection.Order(o.Order),
		Limit:  o.Limit,
		Offset: o.Offset,
	}
}

func fromInternalList[T, R any](p listing.Page[T], conv func(T) R) ListResult[R] {
	items := make([]R, len(p.Items))
	for i, it := range p.Items {
		items[i] = conv(it)
	}
	return ListResult[R]{
		Items:   items,
		Total:   p.Total,
		Limit:   p.Limit,
		Offset:  p.Offset,
		HasMore: p.HasMore(),
	}
}

func fromInternalComponent(c domcomp.Component) Component {
	return Component{
		ID:          c.ID(),
		Name:        c.Name(),
		Slug:        c.Slug(),
		Category:    c.Category(),
		Description: c.Description(),
		AuthorEmail: c.AuthorEmail(),
		CreatedAt:   c.CreatedAt(),
		UpdatedAt:   c.UpdatedAt(),
		Revision:    c.Revision(),
	}
}

func fromInternalPage(p dompage.Page) Page {
	return Page{
		ID:           p.ID(),
		Title:        p.Title(),
		Slug:         p.Slug(),
		Content:      p.Content(),
		Excerpt:      p.Excerpt(),
		Status:       PageStatus(p.Status()),
		AuthorEmail:  p.AuthorEmail(),
		ComponentIDs: p.ComponentIDs(),
		CreatedAt:    p.CreatedAt(),
		UpdatedAt:    p.UpdatedAt(),
		Revision:     p.Revision(),
	}
}

func toInternalPageDraft(in PageInput) dompage.Draft {
	return dompage.Draft{
		Title:        in.Title,
		Slug:         in.Slug,
		Content:      in.Content,
		Excerpt:      in.Excerpt,
		Status:       dompage.Status(in.Status),
		AuthorEmail:  in.AuthorEmail,
		ComponentIDs: in.ComponentIDs,
	}
}

func toInternalPagePatch(p PagePatch) (dompage.Patch, error) {
	f := dompage.PatchFields{
		Title:        p.Title,
		Slug:         p.Slug,
		Content:      p.Content,
		Excerpt:      p.Excerpt,
		AuthorEmail:  p.AuthorEmail,
		ComponentIDs: p.ComponentIDs,
	}
	if p.Status != nil {
		st, err := dompage.ParseStatus(string(*p.Status))
		if err != nil {
			return dompage.Patch{}, err
		}
		f.Status = &st
	}
	return dompage.NewPatch(f)
}

func fromInternalStats(s domstats.Snapshot) Stats {
	byStatus := make(map[PageStatus]int, len(s.PagesByStatus))
	for st, n := range s.PagesByStatus {
		byStatus[PageStatus(st)] = n
	}
	byCategory := make(map[string]int, len(s.ComponentsByCategory))
	for c, n := range s.ComponentsByCategory {
		byCategory[c] = n
	}
	out := Stats{
		Components:           s.Components,
		Pages:                s.Pages,
		PagesByStatus:        byStatus,
		ComponentsByCategory: byCategory,
		ComputedAt:           s.ComputedAt,
	}
	if ref := s.LastUpdatedPage; ref != nil {
		out.LastUpdatedPage = &PageRef{ID: ref.ID, Title: ref.Title, UpdatedAt: ref.UpdatedAt}
	}
	return out
}
