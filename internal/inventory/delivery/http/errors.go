package http

import (
	"errors"
	"net/http"

	"inventory-master/internal/inventory"
	pkgErrors "inventory-master/pkg/errors"
)

// mapError translates domain/use-case errors into HTTP errors. Anything not
// mapped here is a storage or programmer fault and surfaces as 500 via the
// response package.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, inventory.ErrDuplicateItemCode):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Kode barang already exists")
	case errors.Is(err, inventory.ErrDuplicateCategory):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Kode kategori already exists")
	case errors.Is(err, inventory.ErrItemNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Barang not found")
	case errors.Is(err, inventory.ErrStockNotEnabled):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Barang does not have stock enabled")
	default:
		return err
	}
}
