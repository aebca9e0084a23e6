package query

import (
	"context"
	"fmt"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

type widgetRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
	Kind string `db:"kind"`
}

func widgetDescriptor() Descriptor {
	return Descriptor{
		BaseTable: "widgets",
		Columns:   []string{"id", "name", "kind"},
		FilterFields: map[string]FilterField{
			"name": {Column: "name", Op: OpContains},
			"kind": {Column: "kind", Op: OpEquals},
		},
		SortFields: map[string]string{
			"id":   "id",
			"name": "name",
		},
		DefaultSort: "id",
	}
}

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite", t.TempDir()+"/widgets.db")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`CREATE TABLE widgets (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		kind TEXT NOT NULL
	)`)
	require.NoError(t, err)

	for i := 1; i <= 15; i++ {
		kind := "tool"
		if i%3 == 0 {
			kind = "part"
		}
		_, err = db.Exec("INSERT INTO widgets (name, kind) VALUES (?, ?)",
			fmt.Sprintf("widget-%02d", i), kind)
		require.NoError(t, err)
	}
	return db
}

func TestExecutorRun(t *testing.T) {
	db := openTestDB(t)
	exec := NewExecutor(db)
	d := widgetDescriptor()
	ctx := context.Background()

	t.Run("Second Page Of Fifteen Rows", func(t *testing.T) {
		var rows []widgetRow
		total, err := exec.Run(ctx, d, Request{Page: 2, Limit: 10}, &rows)
		require.NoError(t, err)
		require.Equal(t, 15, total)
		require.Len(t, rows, 5)
		require.Equal(t, "widget-11", rows[0].Name)
	})

	t.Run("Count And Page Share Predicate", func(t *testing.T) {
		var rows []widgetRow
		total, err := exec.Run(ctx, d, Request{
			Filters: map[string]string{"kind": "part"},
			Page:    1,
			Limit:   10,
		}, &rows)
		require.NoError(t, err)
		require.Equal(t, 5, total)
		require.Len(t, rows, 5)
		for _, r := range rows {
			require.Equal(t, "part", r.Kind)
		}
	})

	t.Run("Descending Sort By Allowed Field", func(t *testing.T) {
		var rows []widgetRow
		_, err := exec.Run(ctx, d, Request{Sort: "name", Order: "DESC", Page: 1, Limit: 3}, &rows)
		require.NoError(t, err)
		require.Equal(t, "widget-15", rows[0].Name)
		require.Equal(t, "widget-14", rows[1].Name)
	})

	t.Run("Hostile Filter Value Binds Safely", func(t *testing.T) {
		var rows []widgetRow
		total, err := exec.Run(ctx, d, Request{
			Filters: map[string]string{"name": "'; DROP TABLE widgets; --"},
			Page:    1,
			Limit:   10,
		}, &rows)
		require.NoError(t, err)
		require.Zero(t, total)
		require.Empty(t, rows)

		// Table must still exist.
		var n int
		require.NoError(t, db.Get(&n, "SELECT COUNT(*) FROM widgets"))
		require.Equal(t, 15, n)
	})

	t.Run("Empty Page Beyond Total", func(t *testing.T) {
		var rows []widgetRow
		total, err := exec.Run(ctx, d, Request{Page: 4, Limit: 10}, &rows)
		require.NoError(t, err)
		require.Equal(t, 15, total)
		require.Empty(t, rows)
	})
}

func TestSelectSQLShape(t *testing.T) {
	d := widgetDescriptor()
	clause, _ := BuildWhere(d, map[string]string{"name": "x"})
	sql := SelectSQL(d, clause, "name", "DESC")
	require.Equal(t,
		"SELECT id, name, kind FROM widgets WHERE name LIKE ? ORDER BY name DESC LIMIT ? OFFSET ?",
		sql)
	require.Equal(t, "SELECT COUNT(*) FROM widgets WHERE name LIKE ?", CountSQL(d, clause))
}
