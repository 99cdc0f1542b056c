package page

import (
	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	"github.com/kailas-cloud/cmsdash/internal/domain/page"
	"github.com/kailas-cloud/cmsdash/internal/util/collection"
)

// ListSchema names the fields a page list can search and sort by.
var ListSchema = listing.Schema[page.Page]{
	Search: collection.SearchFields[page.Page]{
		"title":        collection.Text(page.Page.Title),
		"slug":         collection.Text(page.Page.Slug),
		"content":      collection.Text(page.Page.Content),
		"excerpt":      collection.Text(page.Page.Excerpt),
		"status":       collection.Text(page.Page.Status),
		"author_email": collection.Text(page.Page.AuthorEmail),
	},
	Sort: collection.SortFields[page.Page]{
		"title":      collection.Key(page.Page.Title),
		"slug":       collection.Key(page.Page.Slug),
		"status":     collection.Key(page.Page.Status),
		"created_at": collection.Key(func(p page.Page) int64 { return p.CreatedAt().UnixMilli() }),
		"updated_at": collection.Key(func(p page.Page) int64 { return p.UpdatedAt().UnixMilli() }),
		"revision":   collection.Key(page.Page.Revision),
	},
	DefaultSort: "created_at",
}
