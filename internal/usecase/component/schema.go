package component

import (
	"github.com/kailas-cloud/cmsdash/internal/domain/component"
	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	"github.com/kailas-cloud/cmsdash/internal/util/collection"
)

// ListSchema names the fields a component list can search and sort by.
var ListSchema = listing.Schema[component.Component]{
	Search: collection.SearchFields[component.Component]{
		"name":         collection.Text(component.Component.Name),
		"slug":         collection.Text(component.Component.Slug),
		"category":     collection.Text(component.Component.Category),
		"description":  collection.Text(component.Component.Description),
		"author_email": collection.Text(component.Component.AuthorEmail),
	},
	Sort: collection.SortFields[component.Component]{
		"name":       collection.Key(component.Component.Name),
		"category":   collection.Key(component.Component.Category),
		"created_at": collection.Key(func(c component.Component) int64 { return c.CreatedAt().UnixMilli() }),
		"updated_at": collection.Key(func(c component.Component) int64 { return c.UpdatedAt().UnixMilli() }),
		"revision":   collection.Key(component.Component.Revision),
	},
	DefaultSort: "created_at",
}
