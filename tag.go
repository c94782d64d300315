package diggpager

import (
	"html"
	"slices"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// tag wraps inner in an element with the given attributes. Attributes are written
// in name order, values are escaped, names and inner are written as is: names are
// checked with isAttributeName when options are validated.
func tag(name string, attributes map[string]string, inner string) string {
	var sb strings.Builder

	sb.WriteString("<")
	sb.WriteString(name)

	keys := lo.Keys(attributes)
	slices.Sort(keys)
	for _, key := range keys {
		sb.WriteString(" ")
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(html.EscapeString(attributes[key]))
		sb.WriteString(`"`)
	}

	sb.WriteString(">")
	sb.WriteString(inner)
	sb.WriteString("</")
	sb.WriteString(name)
	sb.WriteString(">")

	return sb.String()
}

// isAttributeName reports whether name can be written unquoted as an HTML
// attribute name.
func isAttributeName(name string) bool {
	return name != "" && lo.NoneBy([]rune(name), func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r) || strings.ContainsRune(`"'<>/=&`, r)
	})
}
