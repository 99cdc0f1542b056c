package chi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/kailas-cloud/cmsdash/internal/domain/listing"
	"github.com/kailas-cloud/cmsdash/internal/util/collection"
)

// listParams are the query parameters shared by list endpoints.
type listParams struct {
	Q      *string
	Fields *[]string
	Sort   *string
	Order  *string
	Limit  *int
	Offset *int
}

// bindListQuery reads q, fields (comma list), sort, order, limit and offset.
func bindListQuery(r *http.Request) (listing.Query, error) {
	var p listParams
	query := r.URL.Query()

	binds := []struct {
		name    string
		explode bool
		dest    any
	}{
		{"q", true, &p.Q},
		{"fields", false, &p.Fields},
		{"sort", true, &p.Sort},
		{"order", true, &p.Order},
		{"limit", true, &p.Limit},
		{"offset", true, &p.Offset},
	}
	for _, b := range binds {
		if err := runtime.BindQueryParameter("form", b.explode, false, b.name, query, b.dest); err != nil {
			return listing.Query{}, fmt.Errorf("invalid format for parameter %s: %w", b.name, err)
		}
	}

	var q listing.Query
	if p.Q != nil {
		q.Search = strings.TrimSpace(*p.Q)
	}
	if p.Fields != nil {
		for _, f := range *p.Fields {
			if f = strings.TrimSpace(f); f != "" {
				q.Fields = append(q.Fields, f)
			}
		}
	}
	if p.Sort != nil {
		q.SortBy = *p.Sort
	}
	if p.Order != nil {
		order, err := collection.ParseOrder(*p.Order)
		if err != nil {
			return listing.Query{}, err
		}
		q.Order = order
	}
	if p.Limit != nil {
		if *p.Limit < 1 {
			return listing.Query{}, errors.New("limit must be positive")
		}
		q.Limit = *p.Limit
	}
	if p.Offset != nil {
		if *p.Offset < 0 {
			return listing.Query{}, errors.New("offset must not be negative")
		}
		q.Offset = *p.Offset
	}
	return q, nil
}

// pathParam binds a required simple-style path parameter.
func pathParam(r *http.Request, name string) (string, error) {
	var v string
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), &v,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return "", fmt.Errorf("invalid format for parameter %s: %w", name, err)
	}
	return v, nil
}

// ifMatchRevision parses the If-Match header into an expected revision.
// A missing header or "*" means no precondition and yields 0.
func ifMatchRevision(r *http.Request) (int, error) {
	h := strings.TrimSpace(r.Header.Get("If-Match"))
	if h == "" || h == "*" {
		return 0, nil
	}
	h = strings.TrimPrefix(h, "W/")
	if unquoted, err := strconv.Unquote(h); err == nil {
		h = unquoted
	}
	rev, err := strconv.Atoi(h)
	if err != nil || rev < 1 {
		return 0, fmt.Errorf("If-Match must carry a revision ETag, got %q", r.Header.Get("If-Match"))
	}
	return rev, nil
}
