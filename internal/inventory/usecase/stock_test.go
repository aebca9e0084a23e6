package usecase

import (
	"context"
	"errors"
	"testing"

	"inventory-master/internal/inventory"
	repo "inventory-master/internal/inventory/repository"
	"inventory-master/internal/model"
)

func TestSetStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Item Not Found", func(t *testing.T) {
		uc := New(&mockRepository{}, &mockLogger{})
		_, err := uc.SetStock(ctx, inventory.SetStockInput{BarangID: 99, Stock: 5})
		if !errors.Is(err, inventory.ErrItemNotFound) {
			t.Errorf("expected ErrItemNotFound, got %v", err)
		}
	})

	t.Run("Stock Not Enabled", func(t *testing.T) {
		m := &mockRepository{
			getOneItemFunc: func(opt repo.GetOneItemOptions) (model.Item, error) {
				return model.Item{ID: opt.ID, AdaStock: false}, nil
			},
		}
		uc := New(m, &mockLogger{})
		_, err := uc.SetStock(ctx, inventory.SetStockInput{BarangID: 7, Stock: 5})
		if !errors.Is(err, inventory.ErrStockNotEnabled) {
			t.Errorf("expected ErrStockNotEnabled, got %v", err)
		}
	})

	t.Run("Successful Write Returns Joined View", func(t *testing.T) {
		var wroteID int64
		var wroteStock int
		m := &mockRepository{
			getOneItemFunc: func(opt repo.GetOneItemOptions) (model.Item, error) {
				return model.Item{ID: opt.ID, AdaStock: true}, nil
			},
			upsertStockFunc: func(barangID int64, stock int) error {
				wroteID, wroteStock = barangID, stock
				return nil
			},
			getStockLevelFunc: func(barangID int64) (model.StockLevel, error) {
				return model.StockLevel{BarangID: barangID, NamaBarang: "Bolt", Stock: 42}, nil
			},
		}
		uc := New(m, &mockLogger{})
		out, err := uc.SetStock(ctx, inventory.SetStockInput{BarangID: 7, Stock: 42})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if wroteID != 7 || wroteStock != 42 {
			t.Errorf("upsert got (%d, %d), want (7, 42)", wroteID, wroteStock)
		}
		if out.Level.NamaBarang != "Bolt" || out.Level.Stock != 42 {
			t.Errorf("unexpected view row %+v", out.Level)
		}
	})

	t.Run("Upsert Failure Propagates", func(t *testing.T) {
		m := &mockRepository{
			getOneItemFunc: func(opt repo.GetOneItemOptions) (model.Item, error) {
				return model.Item{ID: opt.ID, AdaStock: true}, nil
			},
			upsertStockFunc: func(barangID int64, stock int) error {
				return repo.ErrFailedToUpsert
			},
		}
		uc := New(m, &mockLogger{})
		if _, err := uc.SetStock(ctx, inventory.SetStockInput{BarangID: 7, Stock: 1}); !errors.Is(err, repo.ErrFailedToUpsert) {
			t.Errorf("expected ErrFailedToUpsert, got %v", err)
		}
	})
}
