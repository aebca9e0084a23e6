package http

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"inventory-master/internal/inventory"
)

// Pagination defaults applied when parameters are absent or malformed.
const (
	defaultPage  = 1
	defaultLimit = 10
)

// reservedListParams are query parameters consumed by paging/sorting; every
// other parameter is handed to the query layer as a candidate filter, where
// the descriptor allow-list decides whether it applies.
var reservedListParams = map[string]bool{
	"page":  true,
	"limit": true,
	"sort":  true,
	"order": true,
}

// processListReq parses pagination, sorting, and filter parameters from the
// query string. Malformed or non-positive page/limit fall back to defaults
// rather than erroring, matching permissive query-string handling.
func (h *handler) processListReq(c *gin.Context) inventory.ListInput {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = defaultPage
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = defaultLimit
	}

	filters := make(map[string]string)
	for key, values := range c.Request.URL.Query() {
		if reservedListParams[key] || len(values) == 0 {
			continue
		}
		filters[key] = values[0]
	}

	return inventory.ListInput{
		Filters: filters,
		Sort:    c.Query("sort"),
		Order:   c.Query("order"),
		Page:    page,
		Limit:   limit,
	}
}

// --- Write request DTOs ---

type createItemReq struct {
	KodeBarang       string `json:"kode_barang" binding:"required"`
	NamaBarang       string `json:"nama_barang" binding:"required"`
	TanggalPembuatan string `json:"tanggal_pembuatan" binding:"required"`
	KategoriID       int64  `json:"kategori_id" binding:"required"`
	Satuan           string `json:"satuan" binding:"required"`
	AdaStock         bool   `json:"ada_stock"`
	Keterangan       string `json:"keterangan"`
}

func (r createItemReq) toInput() inventory.CreateItemInput {
	return inventory.CreateItemInput{
		KodeBarang:       r.KodeBarang,
		NamaBarang:       r.NamaBarang,
		TanggalPembuatan: r.TanggalPembuatan,
		KategoriID:       r.KategoriID,
		Satuan:           r.Satuan,
		AdaStock:         r.AdaStock,
		Keterangan:       r.Keterangan,
	}
}

type createCategoryReq struct {
	KodeKategori string `json:"kode_kategori" binding:"required"`
	NamaKategori string `json:"nama_kategori" binding:"required"`
	Keterangan   string `json:"keterangan"`
}

func (r createCategoryReq) toInput() inventory.CreateCategoryInput {
	return inventory.CreateCategoryInput{
		KodeKategori: r.KodeKategori,
		NamaKategori: r.NamaKategori,
		Keterangan:   r.Keterangan,
	}
}

// setStockReq uses a pointer for stock so that an explicit zero is accepted
// while a missing field is still rejected.
type setStockReq struct {
	BarangID int64 `json:"barang_id" binding:"required"`
	Stock    *int  `json:"stock" binding:"required"`
}

func (r setStockReq) toInput() inventory.SetStockInput {
	return inventory.SetStockInput{
		BarangID: r.BarangID,
		Stock:    *r.Stock,
	}
}

func (h *handler) processCreateItemReq(c *gin.Context) (createItemReq, error) {
	var req createItemReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processCreateCategoryReq(c *gin.Context) (createCategoryReq, error) {
	var req createCategoryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

func (h *handler) processSetStockReq(c *gin.Context) (setStockReq, error) {
	var req setStockReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
