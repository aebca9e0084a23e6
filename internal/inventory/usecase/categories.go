package usecase

import (
	"context"

	"inventory-master/internal/inventory"
	repo "inventory-master/internal/inventory/repository"
)

// ListCategories returns a filtered, sorted page of categories.
func (uc *implUseCase) ListCategories(ctx context.Context, input inventory.ListInput) (inventory.ListCategoriesOutput, error) {
	categories, total, err := uc.repo.ListCategories(ctx, listOptions(input))
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCategories: %v", err)
		return inventory.ListCategoriesOutput{}, err
	}
	return inventory.ListCategoriesOutput{
		Categories: categories,
		Total:      total,
		Page:       input.Page,
		Limit:      input.Limit,
	}, nil
}

// CreateCategory creates a new category after checking kode_kategori
// uniqueness.
func (uc *implUseCase) CreateCategory(ctx context.Context, input inventory.CreateCategoryInput) (inventory.CategoryOutput, error) {
	existing, err := uc.repo.GetOneCategory(ctx, repo.GetOneCategoryOptions{KodeKategori: input.KodeKategori})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCategory GetOneCategory: %v", err)
		return inventory.CategoryOutput{}, err
	}
	if existing.ID != 0 {
		return inventory.CategoryOutput{}, inventory.ErrDuplicateCategory
	}

	category, err := uc.repo.CreateCategory(ctx, repo.CreateCategoryOptions{
		KodeKategori: input.KodeKategori,
		NamaKategori: input.NamaKategori,
		Keterangan:   input.Keterangan,
	})
	if err != nil {
		uc.l.Errorf(ctx, "uc.CreateCategory CreateCategory: %v", err)
		return inventory.CategoryOutput{}, err
	}
	return inventory.CategoryOutput{Category: category}, nil
}
