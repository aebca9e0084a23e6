package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"inventory-master/internal/inventory/repository"
	"inventory-master/internal/model"
)

const stockSelect = `SELECT mb.id, mb.nama_barang, mk.nama_kategori AS kategori_barang,
	COALESCE(sb.stock, 0) AS stock, mb.satuan, mb.id AS barang_id, mk.id AS kategori_id
FROM master_barang mb
	LEFT JOIN master_kategori mk ON mb.kategori_id = mk.id
	LEFT JOIN stock_barang sb ON mb.id = sb.barang_id`

// ListStock returns a page of the joined stock view plus the pre-pagination
// total. The descriptor restricts the view to stock-enabled items.
func (r *implRepository) ListStock(ctx context.Context, opt repository.ListOptions) ([]model.StockLevel, int, error) {
	desc, err := r.reg.Describe(entityStock)
	if err != nil {
		return nil, 0, err
	}

	var levels []model.StockLevel
	total, err := r.exec.Run(ctx, desc, listRequest(opt), &levels)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListStock"), err)
		return nil, 0, repository.ErrFailedToList
	}
	return levels, total, nil
}

// GetStockLevel retrieves the joined stock view row for one item. Returns a
// zero-value StockLevel (BarangID == 0) when the item does not exist.
func (r *implRepository) GetStockLevel(ctx context.Context, barangID int64) (model.StockLevel, error) {
	var level model.StockLevel
	err := r.db.GetContext(ctx, &level, stockSelect+" WHERE mb.id = ?", barangID)
	if errors.Is(err, sql.ErrNoRows) {
		return model.StockLevel{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetStockLevel"), err)
		return model.StockLevel{}, repository.ErrFailedToGet
	}
	return level, nil
}

// UpsertStock writes the stock value for an item as a single atomic
// statement. The UNIQUE(barang_id) constraint turns concurrent first writes
// into an insert plus an update instead of two rows, so at most one stock
// row ever exists per item.
func (r *implRepository) UpsertStock(ctx context.Context, barangID int64, stock int) error {
	const q = `INSERT INTO stock_barang (barang_id, stock)
	VALUES (?, ?)
	ON CONFLICT(barang_id) DO UPDATE SET
		stock = excluded.stock,
		updated_at = datetime('now')`

	if _, err := r.db.ExecContext(ctx, q, barangID, stock); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertStock"), err)
		return repository.ErrFailedToUpsert
	}
	return nil
}
