package query

import "strings"

// ResolveSort validates the requested sort field against the descriptor's
// allow-list and maps it to its ORDER BY expression. An unrecognized field
// falls back to the descriptor's default; the raw field token never reaches
// SQL text (ORDER BY cannot be parameterized, so allow-listing is the only
// safe mechanism). Order matches "desc" case-insensitively; everything else,
// including empty, resolves to ascending.
func ResolveSort(d Descriptor, field, order string) (string, string) {
	expr, ok := d.SortFields[field]
	if !ok {
		expr = d.SortFields[d.DefaultSort]
	}

	dir := "ASC"
	if strings.EqualFold(order, "desc") {
		dir = "DESC"
	}
	return expr, dir
}
