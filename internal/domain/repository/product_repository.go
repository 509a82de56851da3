package repository

import "github.com/jhoicas/almacen-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// GetByBarcode solo considera productos activos.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetByBarcode(barcode string) (*entity.Product, error)
	Update(product *entity.Product) error
	SoftDelete(id string) error
	List(limit, offset int) ([]*entity.Product, error)
}

// ProductPriceRepository puerto para el histórico de precios por (producto, año, mes).
type ProductPriceRepository interface {
	Upsert(price *entity.ProductPrice) error
	Get(productID string, year, month int) (*entity.ProductPrice, error)
	ListByProduct(productID string) ([]*entity.ProductPrice, error)
}

// ProductSerialRepository puerto para unidades serializadas.
type ProductSerialRepository interface {
	CreateBatch(serials []*entity.ProductSerial) error
	// UsedSerials devuelve cuáles de los números dados ya existen para el producto.
	UsedSerials(productID string, serialNumbers []string) ([]string, error)
	ListByProduct(productID string) ([]*entity.ProductSerial, error)
}
