package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest alta de producto. Barcode es opcional.
type CreateProductRequest struct {
	SKU            string `json:"sku"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Barcode        string `json:"barcode"`
	ProductType    string `json:"product_type"`
	RequiresSerial bool   `json:"requires_serial"`
	MinStock       int64  `json:"min_stock"`
	MaxStock       int64  `json:"max_stock"`
}

// UpdateProductRequest actualización parcial de producto.
// El código de barras se cambia por su endpoint propio.
type UpdateProductRequest struct {
	Name           *string `json:"name"`
	Description    *string `json:"description"`
	ProductType    *string `json:"product_type"`
	RequiresSerial *bool   `json:"requires_serial"`
	MinStock       *int64  `json:"min_stock"`
	MaxStock       *int64  `json:"max_stock"`
}

// AssignBarcodeRequest asociación de un código de barras a un producto.
type AssignBarcodeRequest struct {
	Barcode string `json:"barcode"`
}

// SetPriceRequest fija el precio de un producto para un (año, mes).
// Año y mes en cero significan el mes en curso.
type SetPriceRequest struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Price decimal.Decimal `json:"price"`
}

// ProductPriceResponse precio de un mes concreto.
type ProductPriceResponse struct {
	ProductID string          `json:"product_id"`
	Year      int             `json:"year"`
	Month     int             `json:"month"`
	Price     decimal.Decimal `json:"price"`
}

// ProductResponse representación pública de un producto.
type ProductResponse struct {
	ID             string    `json:"id"`
	SKU            string    `json:"sku"`
	Barcode        string    `json:"barcode,omitempty"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	ProductType    string    `json:"product_type"`
	RequiresSerial bool      `json:"requires_serial"`
	MinStock       int64     `json:"min_stock"`
	MaxStock       int64     `json:"max_stock"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// ProductListResponse listado paginado de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}
