package http

import (
	"github.com/gin-gonic/gin"

	"inventory-master/pkg/response"
)

// ListItems godoc
// @Summary     List master barang
// @Description Returns a filtered, sorted, paginated list of items.
// @Tags        MasterBarang
// @Produce     json
// @Param       page        query int    false "Page number (default: 1)"
// @Param       limit       query int    false "Page size (default: 10)"
// @Param       sort        query string false "Sort field"
// @Param       order       query string false "Sort order (asc/desc)"
// @Param       kode_barang query string false "Filter by item code (contains)"
// @Param       nama_barang query string false "Filter by item name (contains)"
// @Param       kategori    query string false "Filter by category name (contains)"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /master-barang [GET]
func (h *handler) ListItems(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListItems(ctx, h.processListReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListItems: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.List(c, newItemResps(output.Items), output.Total, output.Page, output.Limit)
}

// CreateItem godoc
// @Summary     Create master barang
// @Description Creates a new item. The item code must be unique.
// @Tags        MasterBarang
// @Accept      json
// @Produce     json
// @Param       body body createItemReq true "Item data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Missing required fields"
// @Failure     409 {object} response.Resp "Kode barang already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /master-barang [POST]
func (h *handler) CreateItem(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateItemReq(c)
	if err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	output, err := h.uc.CreateItem(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateItem: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newItemResp(output.Item), "Master barang created successfully")
}

// ListCategories godoc
// @Summary     List master kategori
// @Description Returns a filtered, sorted, paginated list of categories.
// @Tags        MasterKategori
// @Produce     json
// @Param       page          query int    false "Page number (default: 1)"
// @Param       limit         query int    false "Page size (default: 10)"
// @Param       sort          query string false "Sort field"
// @Param       order         query string false "Sort order (asc/desc)"
// @Param       kode_kategori query string false "Filter by category code (contains)"
// @Param       nama_kategori query string false "Filter by category name (contains)"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /master-kategori [GET]
func (h *handler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListCategories(ctx, h.processListReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListCategories: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.List(c, newCategoryResps(output.Categories), output.Total, output.Page, output.Limit)
}

// CreateCategory godoc
// @Summary     Create master kategori
// @Description Creates a new category. The category code must be unique.
// @Tags        MasterKategori
// @Accept      json
// @Produce     json
// @Param       body body createCategoryReq true "Category data"
// @Success     201 {object} response.Resp
// @Failure     400 {object} response.Resp "Missing required fields"
// @Failure     409 {object} response.Resp "Kode kategori already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /master-kategori [POST]
func (h *handler) CreateCategory(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateCategoryReq(c)
	if err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	output, err := h.uc.CreateCategory(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateCategory: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Created(c, newCategoryResp(output.Category), "Master kategori created successfully")
}

// ListStock godoc
// @Summary     List stock barang
// @Description Returns the joined stock view for stock-enabled items.
// @Tags        StockBarang
// @Produce     json
// @Param       page        query int    false "Page number (default: 1)"
// @Param       limit       query int    false "Page size (default: 10)"
// @Param       sort        query string false "Sort field"
// @Param       order       query string false "Sort order (asc/desc)"
// @Param       nama_barang query string false "Filter by item name (contains)"
// @Param       stock_min   query int    false "Minimum quantity"
// @Param       stock_max   query int    false "Maximum quantity"
// @Success     200 {object} response.Resp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /stock-barang [GET]
func (h *handler) ListStock(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ListStock(ctx, h.processListReq(c))
	if err != nil {
		h.l.Errorf(ctx, "uc.ListStock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.List(c, newStockResps(output.Levels), output.Total, output.Page, output.Limit)
}

// SetStock godoc
// @Summary     Write stock barang
// @Description Sets the stock quantity for an item, creating the stock row
// @Description on first write and updating it in place afterwards.
// @Tags        StockBarang
// @Accept      json
// @Produce     json
// @Param       body body setStockReq true "Stock write"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Missing fields or stock not enabled"
// @Failure     404 {object} response.Resp "Barang not found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /stock-barang [POST]
func (h *handler) SetStock(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSetStockReq(c)
	if err != nil {
		response.BadRequest(c, "Missing required fields")
		return
	}

	output, err := h.uc.SetStock(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.SetStock: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.Updated(c, newStockResp(output.Level), "Stock updated successfully")
}
