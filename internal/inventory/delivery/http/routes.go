package http

import "github.com/gin-gonic/gin"

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.GET("/master-barang", h.ListItems)
	rg.POST("/master-barang", h.CreateItem)

	rg.GET("/master-kategori", h.ListCategories)
	rg.POST("/master-kategori", h.CreateCategory)

	rg.GET("/stock-barang", h.ListStock)
	rg.POST("/stock-barang", h.SetStock)
}
