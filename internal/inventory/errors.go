package inventory

import "errors"

var (
	ErrItemNotFound      = errors.New("barang not found")
	ErrDuplicateItemCode = errors.New("kode barang already exists")
	ErrCategoryNotFound  = errors.New("kategori not found")
	ErrDuplicateCategory = errors.New("kode kategori already exists")
	ErrStockNotEnabled   = errors.New("barang does not have stock enabled")
)
