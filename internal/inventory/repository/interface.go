package repository

import (
	"context"

	"inventory-master/internal/model"
)

// Repository is the composed interface for the inventory data store.
type Repository interface {
	ItemRepository
	CategoryRepository
	StockRepository
}

// ItemRepository defines data access for master_barang.
type ItemRepository interface {
	ListItems(ctx context.Context, opt ListOptions) ([]model.Item, int, error)
	GetOneItem(ctx context.Context, opt GetOneItemOptions) (model.Item, error)
	CreateItem(ctx context.Context, opt CreateItemOptions) (model.Item, error)
}

// CategoryRepository defines data access for master_kategori.
type CategoryRepository interface {
	ListCategories(ctx context.Context, opt ListOptions) ([]model.Category, int, error)
	GetOneCategory(ctx context.Context, opt GetOneCategoryOptions) (model.Category, error)
	CreateCategory(ctx context.Context, opt CreateCategoryOptions) (model.Category, error)
}

// StockRepository defines data access for stock_barang.
type StockRepository interface {
	ListStock(ctx context.Context, opt ListOptions) ([]model.StockLevel, int, error)
	GetStockLevel(ctx context.Context, barangID int64) (model.StockLevel, error)
	UpsertStock(ctx context.Context, barangID int64, stock int) error
}
