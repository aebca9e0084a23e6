package inventory

import "inventory-master/internal/model"

// --- UseCase Inputs ---

// ListInput carries listing parameters for any of the three tabular views.
// Filters hold raw query-string values keyed by filter field name; unknown
// keys are ignored by the query layer's allow-list.
type ListInput struct {
	Filters map[string]string
	Sort    string
	Order   string
	Page    int
	Limit   int
}

type CreateItemInput struct {
	KodeBarang       string
	NamaBarang       string
	TanggalPembuatan string
	KategoriID       int64
	Satuan           string
	AdaStock         bool
	Keterangan       string
}

type CreateCategoryInput struct {
	KodeKategori string
	NamaKategori string
	Keterangan   string
}

type SetStockInput struct {
	BarangID int64
	Stock    int
}

// --- UseCase Outputs ---

type ListItemsOutput struct {
	Items []model.Item
	Total int
	Page  int
	Limit int
}

type ListCategoriesOutput struct {
	Categories []model.Category
	Total      int
	Page       int
	Limit      int
}

type ListStockOutput struct {
	Levels []model.StockLevel
	Total  int
	Page   int
	Limit  int
}

type ItemOutput struct {
	Item model.Item
}

type CategoryOutput struct {
	Category model.Category
}

type StockOutput struct {
	Level model.StockLevel
}
