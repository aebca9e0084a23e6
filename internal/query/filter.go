package query

import (
	"fmt"
	"sort"
	"strings"
)

// BuildWhere turns the caller's filter map into a parameterized conjunction.
//
// Blank values mean "filter not applied". Keys absent from the descriptor's
// FilterFields are silently skipped: unknown filter keys are no-ops, not
// errors, matching permissive query-string handling. The returned clause
// contains only trusted descriptor text and "?" placeholders; every
// caller-supplied value goes into args.
func BuildWhere(d Descriptor, filters map[string]string) (string, []any) {
	conditions := append([]string{}, d.BaseConditions...)
	var args []any

	// Deterministic predicate order regardless of map iteration.
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		raw := strings.TrimSpace(filters[key])
		if raw == "" {
			continue
		}
		f, ok := d.FilterFields[key]
		if !ok {
			continue
		}
		conditions = append(conditions, fmt.Sprintf("%s %s ?", f.Column, f.Op.sql()))
		args = append(args, bindValue(f, raw))
	}

	if len(conditions) == 0 {
		return "", args
	}
	return strings.Join(conditions, " AND "), args
}

// bindValue applies the field's transform, or the LIKE wildcard wrapping
// for substring matches. The result is always bound, never interpolated.
func bindValue(f FilterField, raw string) any {
	if f.Transform != nil {
		return f.Transform(raw)
	}
	if f.Op == OpContains {
		return "%" + raw + "%"
	}
	return raw
}
