package usecase

import (
	"context"

	"inventory-master/internal/inventory"
	repo "inventory-master/internal/inventory/repository"
)

// ListItems returns a filtered, sorted page of items.
func (uc *implUseCase) ListItems(ctx context.Context, input inventory.ListInput) (inventory.ListItemsOutput, error) {
	items, total, err := uc.repo.ListItems(ctx, listOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListItems: %v", err)
		return inventory.ListItemsOutput{}, err
	}
	return inventory.ListItemsOutput{
		Items: items,
		Total: total,
		Page:  input.Page,
		Limit: input.Limit,
	}, nil
}

// CreateItem creates a new item after checking kode_barang uniqueness.
func (uc *implUseCase) CreateItem(ctx context.Context, input inventory.CreateItemInput) (inventory.ItemOutput, error) {
	existing, err := uc.repo.GetOneItem(ctx, repo.GetOneItemOptions{KodeBarang: input.KodeBarang})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateItem GetOneItem: %v", err)
		return inventory.ItemOutput{}, err
	}
	if existing.ID != 0 {
		return inventory.ItemOutput{}, inventory.ErrDuplicateItemCode
	}

	item, err := uc.repo.CreateItem(ctx, repo.CreateItemOptions{
		KodeBarang:       input.KodeBarang,
		NamaBarang:       input.NamaBarang,
		TanggalPembuatan: input.TanggalPembuatan,
		KategoriID:       input.KategoriID,
		Satuan:           input.Satuan,
		AdaStock:         input.AdaStock,
		Keterangan:       input.Keterangan,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateItem CreateItem: %v", err)
		return inventory.ItemOutput{}, err
	}
	return inventory.ItemOutput{Item: item}, nil
}

// listOptions maps a use-case list input onto repository list options.
func listOptions(input inventory.ListInput) repo.ListOptions {
	return repo.ListOptions{
		Filters: input.Filters,
		Sort:    input.Sort,
		Order:   input.Order,
		Page:    input.Page,
		Limit:   input.Limit,
	}
}
