package suggestions

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Filter returns the candidates containing query, compared in upper case.
// An empty query matches nothing.
func Filter(candidates []string, query string) []string {
	items := []string{}
	if query == "" {
		return items
	}

	upper := cases.Upper(language.Und)
	needle := upper.String(query)
	for _, c := range candidates {
		if strings.Contains(upper.String(c), needle) {
			items = append(items, c)
		}
	}
	return items
}
