package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Request carries the caller's listing parameters. Filters values are raw
// query-string values; Page and Limit are expected to be clamped to >= 1 by
// the delivery boundary.
type Request struct {
	Filters map[string]string
	Sort    string
	Order   string
	Page    int
	Limit   int
}

// Executor runs the count/select statement pair for a descriptor.
//
// The two statements share the same FROM, joins, and predicate, but are not
// wrapped in a transaction: under concurrent writes the total and the page
// contents may disagree. Callers must treat total as approximate.
type Executor struct {
	db *sqlx.DB
}

// NewExecutor creates an Executor over the given database handle.
func NewExecutor(db *sqlx.DB) *Executor {
	return &Executor{db: db}
}

// Run executes the count query, then the paginated data query, scanning the
// page rows into dest (a *[]T as accepted by sqlx.SelectContext). It returns
// the total row count matching the predicate before pagination. Filter
// parameters bind first, then limit and offset as trailing bound parameters.
func (e *Executor) Run(ctx context.Context, d Descriptor, req Request, dest any) (int, error) {
	clause, args := BuildWhere(d, req.Filters)
	expr, dir := ResolveSort(d, req.Sort, req.Order)

	var total int
	if err := e.db.GetContext(ctx, &total, CountSQL(d, clause), args...); err != nil {
		return 0, fmt.Errorf("count %s: %w", d.BaseTable, err)
	}

	dataArgs := append(args, req.Limit, Offset(req.Page, req.Limit))
	if err := e.db.SelectContext(ctx, dest, SelectSQL(d, clause, expr, dir), dataArgs...); err != nil {
		return 0, fmt.Errorf("select %s: %w", d.BaseTable, err)
	}
	return total, nil
}

// CountSQL builds the total-count statement for a predicate clause.
func CountSQL(d Descriptor, clause string) string {
	return "SELECT COUNT(*) FROM " + fromSQL(d) + whereSQL(clause)
}

// SelectSQL builds the paginated data statement. The ORDER BY expression and
// direction must come from ResolveSort; limit and offset are placeholders.
func SelectSQL(d Descriptor, clause, orderExpr, orderDir string) string {
	return "SELECT " + strings.Join(d.Columns, ", ") +
		" FROM " + fromSQL(d) + whereSQL(clause) +
		" ORDER BY " + orderExpr + " " + orderDir +
		" LIMIT ? OFFSET ?"
}

func fromSQL(d Descriptor) string {
	var b strings.Builder
	b.WriteString(d.BaseTable)
	for _, j := range d.Joins {
		b.WriteString(" LEFT JOIN ")
		b.WriteString(j.Table)
		b.WriteString(" ON ")
		b.WriteString(j.On)
	}
	return b.String()
}

func whereSQL(clause string) string {
	if clause == "" {
		return ""
	}
	return " WHERE " + clause
}
