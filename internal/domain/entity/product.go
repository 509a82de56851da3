package entity

import "time"

// Tipos de producto.
const (
	ProductTypeTangible   = "tangible"
	ProductTypeIntangible = "intangible"
)

// Product representa un producto o SKU del catálogo (multi-bodega).
// El stock se maneja por bodega en Stock; el precio vigente vive en ProductPrice por (año, mes).
// Nunca se borra físicamente: la baja es IsActive=false.
type Product struct {
	ID             string
	SKU            string // código único
	Barcode        string // opcional; único entre productos activos
	Name           string
	Description    string
	ProductType    string // tangible | intangible
	RequiresSerial bool   // si true, toda entrada exige números de serie
	MinStock       int64
	MaxStock       int64
	IsActive       bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
