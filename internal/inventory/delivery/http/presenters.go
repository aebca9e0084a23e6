package http

import "inventory-master/internal/model"

// --- Response DTOs ---

type itemResp struct {
	ID               int64   `json:"id"`
	KodeBarang       string  `json:"kode_barang"`
	NamaBarang       string  `json:"nama_barang"`
	TanggalPembuatan string  `json:"tanggal_pembuatan"`
	Kategori         *string `json:"kategori"`
	Satuan           string  `json:"satuan"`
	AdaStock         bool    `json:"ada_stock"`
	Keterangan       *string `json:"keterangan"`
	CreatedAt        string  `json:"created_at"`
	UpdatedAt        string  `json:"updated_at"`
}

func newItemResp(item model.Item) itemResp {
	return itemResp{
		ID:               item.ID,
		KodeBarang:       item.KodeBarang,
		NamaBarang:       item.NamaBarang,
		TanggalPembuatan: item.TanggalPembuatan,
		Kategori:         item.Kategori,
		Satuan:           item.Satuan,
		AdaStock:         item.AdaStock,
		Keterangan:       item.Keterangan,
		CreatedAt:        item.CreatedAt,
		UpdatedAt:        item.UpdatedAt,
	}
}

func newItemResps(items []model.Item) []itemResp {
	resps := make([]itemResp, len(items))
	for i, item := range items {
		resps[i] = newItemResp(item)
	}
	return resps
}

type categoryResp struct {
	ID           int64   `json:"id"`
	KodeKategori string  `json:"kode_kategori"`
	NamaKategori string  `json:"nama_kategori"`
	Keterangan   *string `json:"keterangan"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func newCategoryResp(category model.Category) categoryResp {
	return categoryResp{
		ID:           category.ID,
		KodeKategori: category.KodeKategori,
		NamaKategori: category.NamaKategori,
		Keterangan:   category.Keterangan,
		CreatedAt:    category.CreatedAt,
		UpdatedAt:    category.UpdatedAt,
	}
}

func newCategoryResps(categories []model.Category) []categoryResp {
	resps := make([]categoryResp, len(categories))
	for i, category := range categories {
		resps[i] = newCategoryResp(category)
	}
	return resps
}

type stockResp struct {
	ID             int64   `json:"id"`
	NamaBarang     string  `json:"nama_barang"`
	KategoriBarang *string `json:"kategori_barang"`
	Stock          int     `json:"stock"`
	Satuan         string  `json:"satuan"`
	BarangID       int64   `json:"barang_id"`
	KategoriID     *int64  `json:"kategori_id"`
}

func newStockResp(level model.StockLevel) stockResp {
	return stockResp{
		ID:             level.ID,
		NamaBarang:     level.NamaBarang,
		KategoriBarang: level.KategoriBarang,
		Stock:          level.Stock,
		Satuan:         level.Satuan,
		BarangID:       level.BarangID,
		KategoriID:     level.KategoriID,
	}
}

func newStockResps(levels []model.StockLevel) []stockResp {
	resps := make([]stockResp, len(levels))
	for i, level := range levels {
		resps[i] = newStockResp(level)
	}
	return resps
}
