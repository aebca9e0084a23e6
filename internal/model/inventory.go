package model

// Item is a master_barang row joined with its category name. Column names
// follow the underlying schema; kategori is NULL when the item has no
// category row.
type Item struct {
	ID               int64   `db:"id"`
	KodeBarang       string  `db:"kode_barang"`
	NamaBarang       string  `db:"nama_barang"`
	TanggalPembuatan string  `db:"tanggal_pembuatan"`
	Kategori         *string `db:"kategori"`
	Satuan           string  `db:"satuan"`
	AdaStock         bool    `db:"ada_stock"`
	Keterangan       *string `db:"keterangan"`
	CreatedAt        string  `db:"created_at"`
	UpdatedAt        string  `db:"updated_at"`
}

// Category is a master_kategori row.
type Category struct {
	ID           int64   `db:"id"`
	KodeKategori string  `db:"kode_kategori"`
	NamaKategori string  `db:"nama_kategori"`
	Keterangan   *string `db:"keterangan"`
	CreatedAt    string  `db:"created_at"`
	UpdatedAt    string  `db:"updated_at"`
}

// StockLevel is the joined stock view row: an item with its category name
// and quantity, quantity coalescing to 0 when no stock row exists yet.
type StockLevel struct {
	ID             int64   `db:"id"`
	NamaBarang     string  `db:"nama_barang"`
	KategoriBarang *string `db:"kategori_barang"`
	Stock          int     `db:"stock"`
	Satuan         string  `db:"satuan"`
	BarangID       int64   `db:"barang_id"`
	KategoriID     *int64  `db:"kategori_id"`
}
