package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	inventoryHTTP "inventory-master/internal/inventory/delivery/http"
	inventoryRepo "inventory-master/internal/inventory/repository/sqlite"
	inventoryUC "inventory-master/internal/inventory/usecase"
)

// setupInventoryDomain initializes the inventory domain and registers its
// routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.db, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(repo, srv.l)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv HTTPServer) setupInventoryDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. Repository
	repo := inventoryRepo.New(srv.db, srv.l)

	// 2. UseCase
	uc := inventoryUC.New(repo, srv.l)

	// 3. HTTP Handler
	h := inventoryHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/master-barang, /api/v1/master-kategori,
	//    /api/v1/stock-barang
	inventoryHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Inventory domain registered")
	return nil
}
