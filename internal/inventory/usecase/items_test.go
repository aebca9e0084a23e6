package usecase

import (
	"context"
	"errors"
	"testing"

	"inventory-master/internal/inventory"
	repo "inventory-master/internal/inventory/repository"
	"inventory-master/internal/model"
)

func TestCreateItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate Code Performs No Insert", func(t *testing.T) {
		inserted := false
		m := &mockRepository{
			getOneItemFunc: func(opt repo.GetOneItemOptions) (model.Item, error) {
				if opt.KodeBarang == "I1" {
					return model.Item{ID: 3, KodeBarang: "I1"}, nil
				}
				return model.Item{}, nil
			},
			createItemFunc: func(opt repo.CreateItemOptions) (model.Item, error) {
				inserted = true
				return model.Item{}, nil
			},
		}
		uc := New(m, &mockLogger{})
		_, err := uc.CreateItem(ctx, inventory.CreateItemInput{KodeBarang: "I1"})
		if !errors.Is(err, inventory.ErrDuplicateItemCode) {
			t.Errorf("expected ErrDuplicateItemCode, got %v", err)
		}
		if inserted {
			t.Errorf("duplicate create must not reach the repository insert")
		}
	})

	t.Run("New Code Inserts And Returns Record", func(t *testing.T) {
		m := &mockRepository{
			createItemFunc: func(opt repo.CreateItemOptions) (model.Item, error) {
				return model.Item{ID: 1, KodeBarang: opt.KodeBarang, NamaBarang: opt.NamaBarang}, nil
			},
		}
		uc := New(m, &mockLogger{})
		out, err := uc.CreateItem(ctx, inventory.CreateItemInput{KodeBarang: "I2", NamaBarang: "Bolt"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Item.ID != 1 || out.Item.NamaBarang != "Bolt" {
			t.Errorf("unexpected output %+v", out.Item)
		}
	})

	t.Run("Lookup Failure Propagates", func(t *testing.T) {
		m := &mockRepository{
			getOneItemFunc: func(opt repo.GetOneItemOptions) (model.Item, error) {
				return model.Item{}, repo.ErrFailedToGet
			},
		}
		uc := New(m, &mockLogger{})
		_, err := uc.CreateItem(ctx, inventory.CreateItemInput{KodeBarang: "I1"})
		if !errors.Is(err, repo.ErrFailedToGet) {
			t.Errorf("expected ErrFailedToGet, got %v", err)
		}
	})
}

func TestListItems(t *testing.T) {
	ctx := context.Background()

	t.Run("Echoes Pagination With Repo Total", func(t *testing.T) {
		m := &mockRepository{
			listItemsFunc: func(opt repo.ListOptions) ([]model.Item, int, error) {
				return []model.Item{{ID: 11}, {ID: 12}}, 15, nil
			},
		}
		uc := New(m, &mockLogger{})
		out, err := uc.ListItems(ctx, inventory.ListInput{Page: 2, Limit: 10})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Total != 15 || out.Page != 2 || out.Limit != 10 || len(out.Items) != 2 {
			t.Errorf("unexpected output %+v", out)
		}
	})

	t.Run("Repo Failure Propagates", func(t *testing.T) {
		m := &mockRepository{
			listItemsFunc: func(opt repo.ListOptions) ([]model.Item, int, error) {
				return nil, 0, repo.ErrFailedToList
			},
		}
		uc := New(m, &mockLogger{})
		if _, err := uc.ListItems(ctx, inventory.ListInput{Page: 1, Limit: 10}); !errors.Is(err, repo.ErrFailedToList) {
			t.Errorf("expected ErrFailedToList, got %v", err)
		}
	})
}

func TestCreateCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate Code", func(t *testing.T) {
		m := &mockRepository{
			getOneCategoryFunc: func(opt repo.GetOneCategoryOptions) (model.Category, error) {
				return model.Category{ID: 1, KodeKategori: opt.KodeKategori}, nil
			},
		}
		uc := New(m, &mockLogger{})
		_, err := uc.CreateCategory(ctx, inventory.CreateCategoryInput{KodeKategori: "C1"})
		if !errors.Is(err, inventory.ErrDuplicateCategory) {
			t.Errorf("expected ErrDuplicateCategory, got %v", err)
		}
	})

	t.Run("New Code", func(t *testing.T) {
		m := &mockRepository{
			createCategoryFunc: func(opt repo.CreateCategoryOptions) (model.Category, error) {
				return model.Category{ID: 2, KodeKategori: opt.KodeKategori, NamaKategori: opt.NamaKategori}, nil
			},
		}
		uc := New(m, &mockLogger{})
		out, err := uc.CreateCategory(ctx, inventory.CreateCategoryInput{KodeKategori: "C2", NamaKategori: "Widgets"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Category.NamaKategori != "Widgets" {
			t.Errorf("unexpected output %+v", out.Category)
		}
	})
}
