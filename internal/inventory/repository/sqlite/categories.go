package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"inventory-master/internal/inventory/repository"
	"inventory-master/internal/model"
)

const categorySelect = `SELECT id, kode_kategori, nama_kategori, keterangan, created_at, updated_at
FROM master_kategori`

// ListCategories returns a page of categories plus the pre-pagination total.
func (r *implRepository) ListCategories(ctx context.Context, opt repository.ListOptions) ([]model.Category, int, error) {
	desc, err := r.reg.Describe(entityCategories)
	if err != nil {
		return nil, 0, err
	}

	var categories []model.Category
	total, err := r.exec.Run(ctx, desc, listRequest(opt), &categories)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListCategories"), err)
		return nil, 0, repository.ErrFailedToList
	}
	return categories, total, nil
}

// GetOneCategory retrieves a single category by the provided lookup fields.
// Returns a zero-value Category (ID == 0) when not found.
func (r *implRepository) GetOneCategory(ctx context.Context, opt repository.GetOneCategoryOptions) (model.Category, error) {
	var conditions []string
	var args []any

	if opt.ID != 0 {
		conditions = append(conditions, "id = ?")
		args = append(args, opt.ID)
	}
	if opt.KodeKategori != "" {
		conditions = append(conditions, "kode_kategori = ?")
		args = append(args, opt.KodeKategori)
	}
	clause := "1=1"
	if len(conditions) > 0 {
		clause = strings.Join(conditions, " AND ")
	}

	var category model.Category
	err := r.db.GetContext(ctx, &category, fmt.Sprintf("%s WHERE %s LIMIT 1", categorySelect, clause), args...)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Category{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneCategory"), err)
		return model.Category{}, repository.ErrFailedToGet
	}
	return category, nil
}

// CreateCategory inserts a new master_kategori row and returns it.
func (r *implRepository) CreateCategory(ctx context.Context, opt repository.CreateCategoryOptions) (model.Category, error) {
	const q = `INSERT INTO master_kategori (kode_kategori, nama_kategori, keterangan)
	VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, q, opt.KodeKategori, opt.NamaKategori, nullable(opt.Keterangan))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repository.ErrFailedToInsert
	}

	id, err := res.LastInsertId()
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateCategory"), err)
		return model.Category{}, repository.ErrFailedToInsert
	}
	return r.GetOneCategory(ctx, repository.GetOneCategoryOptions{ID: id})
}
