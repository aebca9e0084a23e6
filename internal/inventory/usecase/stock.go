package usecase

import (
	"context"

	"inventory-master/internal/inventory"
	repo "inventory-master/internal/inventory/repository"
)

// ListStock returns a filtered, sorted page of the joined stock view.
func (uc *implUseCase) ListStock(ctx context.Context, input inventory.ListInput) (inventory.ListStockOutput, error) {
	levels, total, err := uc.repo.ListStock(ctx, listOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListStock: %v", err)
		return inventory.ListStockOutput{}, err
	}
	return inventory.ListStockOutput{
		Levels: levels,
		Total:  total,
		Page:   input.Page,
		Limit:  input.Limit,
	}, nil
}

// SetStock writes the stock value for an item. The item must exist and be
// stock-enabled; the write itself is a single atomic insert-or-update, so
// concurrent writers can never produce a second row for the same item.
func (uc *implUseCase) SetStock(ctx context.Context, input inventory.SetStockInput) (inventory.StockOutput, error) {
	item, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{ID: input.BarangID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetStock GetOneItem: %v", err)
		return inventory.StockOutput{}, err
	}
	if item.ID == 0 {
		return inventory.StockOutput{}, inventory.ErrItemNotFound
	}
	if !item.AdaStock {
		return inventory.StockOutput{}, inventory.ErrStockNotEnabled
	}

	if err := uc.repo.UpsertStock(ctx, input.BarangID, input.Stock); err != nil {
		uc.l.Errorf(ctx, "uc.SetStock UpsertStock: %v", err)
		return inventory.StockOutput{}, err
	}

	level, err := uc.repo.GetStockLevel(ctx, input.BarangID)
	if err != nil {
		uc.l.Errorf(ctx, "uc.SetStock GetStockLevel: %v", err)
		return inventory.StockOutput{}, err
	}
	return inventory.StockOutput{Level: level}, nil
}
