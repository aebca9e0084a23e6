// Package query implements descriptor-driven SQL construction for tabular
// list endpoints: allow-listed filters, allow-listed sorting, and bound
// pagination. User-supplied values only ever reach the database as bound
// parameters; identifiers only ever come from a Descriptor.
package query

import (
	"errors"
	"fmt"
)

// ErrUnknownEntity is returned by Registry.Describe for unregistered names.
var ErrUnknownEntity = errors.New("unknown entity")

// Op is the comparison operator a filter field applies.
type Op int

const (
	OpEquals Op = iota
	OpContains
	OpGTE
	OpLTE
)

// sql returns the SQL comparison token for the operator.
func (o Op) sql() string {
	switch o {
	case OpContains:
		return "LIKE"
	case OpGTE:
		return ">="
	case OpLTE:
		return "<="
	default:
		return "="
	}
}

// FilterField declares how one query-string filter key maps onto SQL.
// Column is a trusted expression (possibly a joined or computed column),
// never caller input. Transform, when set, converts the raw string value
// into the value to bind (e.g. "true" → 1).
type FilterField struct {
	Column    string
	Op        Op
	Transform func(raw string) any
}

// Join is an auxiliary table joined into the entity's FROM clause.
// Always a LEFT join: a missing related row must not drop the primary row.
type Join struct {
	Table string
	On    string
}

// Descriptor is the static, immutable definition of one queryable entity.
// It is the single allow-list deciding which filter keys and sort fields
// are live; anything else in a request is inert.
type Descriptor struct {
	BaseTable string
	Joins     []Join

	// Columns is the SELECT list for data queries.
	Columns []string

	// FilterFields maps query-string keys to predicate specs.
	FilterFields map[string]FilterField

	// SortFields maps sortable keys to ORDER BY expressions.
	SortFields map[string]string

	// DefaultSort is the SortFields key used when the requested field
	// is not recognized.
	DefaultSort string

	// BaseConditions are fixed predicates applied to every query against
	// this entity, regardless of caller filters (e.g. restricting the
	// stock view to stock-enabled items). Trusted text, no parameters.
	BaseConditions []string
}

// Registry holds the descriptors for all queryable entities, built once at
// startup and never mutated afterwards.
type Registry map[string]Descriptor

// Describe returns the descriptor registered under name.
func (r Registry) Describe(name string) (Descriptor, error) {
	d, ok := r[name]
	if !ok {
		return Descriptor{}, fmt.Errorf("%w: %q", ErrUnknownEntity, name)
	}
	return d, nil
}
