package diggpager

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// PageParam is the query string parameter that carries the page number.
const PageParam = "page"

// URLBuilder returns the URL of the given 1-based page.
type URLBuilder func(page int) string

// QueryURLBuilder builds "<path>?page=N&..." URLs. All parameters of query are kept
// except page, which is always replaced. The query is encoded with sorted keys.
//
// Usage:
//
//	QueryURLBuilder("/users", r.URL.Query())(3) // "/users?page=3&sort=name+asc"
func QueryURLBuilder(path string, query url.Values) URLBuilder {
	preserved := cloneValues(query)

	return func(page int) string {
		values := cloneValues(preserved)
		values.Set(PageParam, strconv.Itoa(page))

		return path + "?" + values.Encode()
	}
}

// RouteURLBuilder builds "/<controller>/<action>?page=N&..." URLs. Empty route
// segments are skipped; query is handled as in QueryURLBuilder.
func RouteURLBuilder(action, controller string, query url.Values) URLBuilder {
	segments := make([]string, 0, 2)
	for _, segment := range []string{controller, action} {
		if segment != "" {
			segments = append(segments, url.PathEscape(segment))
		}
	}

	return QueryURLBuilder("/"+strings.Join(segments, "/"), query)
}

func cloneValues(values url.Values) url.Values {
	return lo.MapValues(values, func(vals []string, _ string) []string {
		return slices.Clone(vals)
	})
}
