package sqlite

import (
	"strconv"

	"inventory-master/internal/query"
)

// Entity names registered in the query descriptor registry.
const (
	entityItems      = "barang"
	entityCategories = "kategori"
	entityStock      = "stock"
)

// newRegistry builds the static descriptors for the three tabular views.
// These are the only place where filterable/sortable surface and SQL
// identifiers meet; nothing caller-supplied ever extends them.
func newRegistry() query.Registry {
	kategoriJoin := query.Join{Table: "master_kategori mk", On: "mb.kategori_id = mk.id"}
	stockJoin := query.Join{Table: "stock_barang sb", On: "mb.id = sb.barang_id"}

	return query.Registry{
		entityItems: {
			BaseTable: "master_barang mb",
			Joins:     []query.Join{kategoriJoin},
			Columns: []string{
				"mb.id", "mb.kode_barang", "mb.nama_barang", "mb.tanggal_pembuatan",
				"mk.nama_kategori AS kategori", "mb.satuan", "mb.ada_stock",
				"mb.keterangan", "mb.created_at", "mb.updated_at",
			},
			FilterFields: map[string]query.FilterField{
				"kode_barang":              {Column: "mb.kode_barang", Op: query.OpContains},
				"nama_barang":              {Column: "mb.nama_barang", Op: query.OpContains},
				"tanggal_pembuatan_dari":   {Column: "mb.tanggal_pembuatan", Op: query.OpGTE},
				"tanggal_pembuatan_sampai": {Column: "mb.tanggal_pembuatan", Op: query.OpLTE},
				"kategori":                 {Column: "mk.nama_kategori", Op: query.OpContains},
				"satuan":                   {Column: "mb.satuan", Op: query.OpContains},
				"ada_stock":                {Column: "mb.ada_stock", Op: query.OpEquals, Transform: boolFlag},
				"keterangan":               {Column: "mb.keterangan", Op: query.OpContains},
			},
			SortFields: map[string]string{
				"id":                "mb.id",
				"kode_barang":       "mb.kode_barang",
				"nama_barang":       "mb.nama_barang",
				"tanggal_pembuatan": "mb.tanggal_pembuatan",
				"kategori":          "mk.nama_kategori",
				"satuan":            "mb.satuan",
				"ada_stock":         "mb.ada_stock",
			},
			DefaultSort: "id",
		},

		entityCategories: {
			BaseTable: "master_kategori",
			Columns: []string{
				"id", "kode_kategori", "nama_kategori", "keterangan",
				"created_at", "updated_at",
			},
			FilterFields: map[string]query.FilterField{
				"kode_kategori": {Column: "kode_kategori", Op: query.OpContains},
				"nama_kategori": {Column: "nama_kategori", Op: query.OpContains},
				"keterangan":    {Column: "keterangan", Op: query.OpContains},
			},
			SortFields: map[string]string{
				"id":            "id",
				"kode_kategori": "kode_kategori",
				"nama_kategori": "nama_kategori",
				"keterangan":    "keterangan",
			},
			DefaultSort: "id",
		},

		entityStock: {
			BaseTable: "master_barang mb",
			Joins:     []query.Join{kategoriJoin, stockJoin},
			Columns: []string{
				"mb.id", "mb.nama_barang", "mk.nama_kategori AS kategori_barang",
				"COALESCE(sb.stock, 0) AS stock", "mb.satuan",
				"mb.id AS barang_id", "mk.id AS kategori_id",
			},
			// The stock view only ever shows stock-enabled items.
			BaseConditions: []string{"mb.ada_stock = 1"},
			FilterFields: map[string]query.FilterField{
				"nama_barang":     {Column: "mb.nama_barang", Op: query.OpContains},
				"kategori_barang": {Column: "mk.nama_kategori", Op: query.OpContains},
				"stock_min":       {Column: "COALESCE(sb.stock, 0)", Op: query.OpGTE, Transform: intValue},
				"stock_max":       {Column: "COALESCE(sb.stock, 0)", Op: query.OpLTE, Transform: intValue},
				"satuan":          {Column: "mb.satuan", Op: query.OpContains},
			},
			SortFields: map[string]string{
				"id":              "mb.id",
				"nama_barang":     "mb.nama_barang",
				"kategori_barang": "mk.nama_kategori",
				"stock":           "COALESCE(sb.stock, 0)",
				"satuan":          "mb.satuan",
			},
			DefaultSort: "id",
		},
	}
}

// boolFlag maps the query-string booleans onto the stored 0/1 flag.
func boolFlag(raw string) any {
	if raw == "true" {
		return 1
	}
	return 0
}

// intValue binds numeric range bounds as integers; a non-numeric value is
// bound as-is and simply matches nothing numeric.
func intValue(raw string) any {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return raw
	}
	return n
}
