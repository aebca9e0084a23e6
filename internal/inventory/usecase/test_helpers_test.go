package usecase

import (
	"context"

	repo "inventory-master/internal/inventory/repository"
	"inventory-master/internal/model"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, args ...any)  {}

// mockRepository implements repository.Repository with overridable funcs.
type mockRepository struct {
	listItemsFunc      func(opt repo.ListOptions) ([]model.Item, int, error)
	getOneItemFunc     func(opt repo.GetOneItemOptions) (model.Item, error)
	createItemFunc     func(opt repo.CreateItemOptions) (model.Item, error)
	listCategoriesFunc func(opt repo.ListOptions) ([]model.Category, int, error)
	getOneCategoryFunc func(opt repo.GetOneCategoryOptions) (model.Category, error)
	createCategoryFunc func(opt repo.CreateCategoryOptions) (model.Category, error)
	listStockFunc      func(opt repo.ListOptions) ([]model.StockLevel, int, error)
	getStockLevelFunc  func(barangID int64) (model.StockLevel, error)
	upsertStockFunc    func(barangID int64, stock int) error
}

func (m *mockRepository) ListItems(ctx context.Context, opt repo.ListOptions) ([]model.Item, int, error) {
	if m.listItemsFunc != nil {
		return m.listItemsFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) GetOneItem(ctx context.Context, opt repo.GetOneItemOptions) (model.Item, error) {
	if m.getOneItemFunc != nil {
		return m.getOneItemFunc(opt)
	}
	return model.Item{}, nil
}

func (m *mockRepository) CreateItem(ctx context.Context, opt repo.CreateItemOptions) (model.Item, error) {
	if m.createItemFunc != nil {
		return m.createItemFunc(opt)
	}
	return model.Item{}, nil
}

func (m *mockRepository) ListCategories(ctx context.Context, opt repo.ListOptions) ([]model.Category, int, error) {
	if m.listCategoriesFunc != nil {
		return m.listCategoriesFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) GetOneCategory(ctx context.Context, opt repo.GetOneCategoryOptions) (model.Category, error) {
	if m.getOneCategoryFunc != nil {
		return m.getOneCategoryFunc(opt)
	}
	return model.Category{}, nil
}

func (m *mockRepository) CreateCategory(ctx context.Context, opt repo.CreateCategoryOptions) (model.Category, error) {
	if m.createCategoryFunc != nil {
		return m.createCategoryFunc(opt)
	}
	return model.Category{}, nil
}

func (m *mockRepository) ListStock(ctx context.Context, opt repo.ListOptions) ([]model.StockLevel, int, error) {
	if m.listStockFunc != nil {
		return m.listStockFunc(opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) GetStockLevel(ctx context.Context, barangID int64) (model.StockLevel, error) {
	if m.getStockLevelFunc != nil {
		return m.getStockLevelFunc(barangID)
	}
	return model.StockLevel{}, nil
}

func (m *mockRepository) UpsertStock(ctx context.Context, barangID int64, stock int) error {
	if m.upsertStockFunc != nil {
		return m.upsertStockFunc(barangID, stock)
	}
	return nil
}
