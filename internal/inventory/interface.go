package inventory

import "context"

// UseCase covers the three tabular views plus their write operations.
type UseCase interface {
	// Items (master barang)
	ListItems(ctx context.Context, input ListInput) (ListItemsOutput, error)
	CreateItem(ctx context.Context, input CreateItemInput) (ItemOutput, error)

	// Categories (master kategori)
	ListCategories(ctx context.Context, input ListInput) (ListCategoriesOutput, error)
	CreateCategory(ctx context.Context, input CreateCategoryInput) (CategoryOutput, error)

	// Stock levels
	ListStock(ctx context.Context, input ListInput) (ListStockOutput, error)
	SetStock(ctx context.Context, input SetStockInput) (StockOutput, error)
}
