package repository

// ListOptions holds filter, sort, and pagination parameters for the list
// methods. Filters are raw query-string values; the descriptor allow-list
// in the query layer decides which of them apply.
type ListOptions struct {
	Filters map[string]string
	Sort    string
	Order   string
	Page    int
	Limit   int
}

// GetOneItemOptions holds lookup parameters for fetching a single item.
// All non-zero fields are applied as AND conditions.
type GetOneItemOptions struct {
	ID         int64
	KodeBarang string
}

// GetOneCategoryOptions holds lookup parameters for fetching a single
// category. All non-zero fields are applied as AND conditions.
type GetOneCategoryOptions struct {
	ID           int64
	KodeKategori string
}

// CreateItemOptions holds parameters for inserting a new item.
type CreateItemOptions struct {
	KodeBarang       string
	NamaBarang       string
	TanggalPembuatan string
	KategoriID       int64
	Satuan           string
	AdaStock         bool
	Keterangan       string
}

// CreateCategoryOptions holds parameters for inserting a new category.
type CreateCategoryOptions struct {
	KodeKategori string
	NamaKategori string
	Keterangan   string
}
