package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"inventory-master/internal/inventory/repository"
	"inventory-master/internal/model"
	"inventory-master/internal/query"
)

const itemSelect = `SELECT mb.id, mb.kode_barang, mb.nama_barang, mb.tanggal_pembuatan,
	mk.nama_kategori AS kategori, mb.satuan, mb.ada_stock, mb.keterangan,
	mb.created_at, mb.updated_at
FROM master_barang mb LEFT JOIN master_kategori mk ON mb.kategori_id = mk.id`

// ListItems returns a page of items joined with their category names, plus
// the pre-pagination total.
func (r *implRepository) ListItems(ctx context.Context, opt repository.ListOptions) ([]model.Item, int, error) {
	desc, err := r.reg.Describe(entityItems)
	if err != nil {
		return nil, 0, err
	}

	var items []model.Item
	total, err := r.exec.Run(ctx, desc, listRequest(opt), &items)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListItems"), err)
		return nil, 0, repository.ErrFailedToList
	}
	return items, total, nil
}

// GetOneItem retrieves a single item by the provided lookup fields (AND
// condition). Returns a zero-value Item (ID == 0) when not found — not an
// error.
func (r *implRepository) GetOneItem(ctx context.Context, opt repository.GetOneItemOptions) (model.Item, error) {
	conditions, args := buildItemLookup(opt)
	q := fmt.Sprintf("%s WHERE %s LIMIT 1", itemSelect, conditions)

	var item model.Item
	err := r.db.GetContext(ctx, &item, q, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Item{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneItem"), err)
		return model.Item{}, repository.ErrFailedToGet
	}
	return item, nil
}

// CreateItem inserts a new master_barang row and returns the joined record.
func (r *implRepository) CreateItem(ctx context.Context, opt repository.CreateItemOptions) (model.Item, error) {
	const q = `INSERT INTO master_barang
		(kode_barang, nama_barang, tanggal_pembuatan, kategori_id, satuan, ada_stock, keterangan)
	VALUES (?, ?, ?, ?, ?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q,
		opt.KodeBarang, opt.NamaBarang, opt.TanggalPembuatan,
		opt.KategoriID, opt.Satuan, opt.AdaStock, nullable(opt.Keterangan))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repository.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateItem"), err)
		return model.Item{}, repository.ErrFailedToInsert
	}
	return r.GetOneItem(ctx, repository.GetOneItemOptions{ID: id})
}

// buildItemLookup builds the WHERE clause + args for GetOneItem.
func buildItemLookup(opt repository.GetOneItemOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.ID != 0 {
		conditions = append(conditions, "mb.id = ?")
		args = append(args, opt.ID)
	}
	if opt.KodeBarang != "" {
		conditions = append(conditions, "mb.kode_barang = ?")
		args = append(args, opt.KodeBarang)
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// listRequest maps repository list options onto a query request.
func listRequest(opt repository.ListOptions) query.Request {
	return query.Request{
		Filters: opt.Filters,
		Sort:    opt.Sort,
		Order:   opt.Order,
		Page:    opt.Page,
		Limit:   opt.Limit,
	}
}

// nullable maps an empty string to NULL.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
