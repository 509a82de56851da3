package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/barcode"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ProductUseCase también sirve de buscador para el flujo de escaneo.
var _ barcode.ProductFinder = (*ProductUseCase)(nil)

// ProductUseCase casos de uso CRUD del catálogo de productos. El stock se
// maneja vía movimientos; la baja es lógica (IsActive=false).
type ProductUseCase struct {
	repo      repository.ProductRepository
	priceRepo repository.ProductPriceRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository, priceRepo repository.ProductPriceRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, priceRepo: priceRepo}
}

// Create crea un nuevo producto con SKU único; el barcode es opcional y,
// si viene, no puede pertenecer a otro producto activo.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.SKU == "" || in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.ProductType == "" {
		in.ProductType = entity.ProductTypeTangible
	}
	if in.ProductType != entity.ProductTypeTangible && in.ProductType != entity.ProductTypeIntangible {
		return nil, domain.ErrInvalidInput
	}
	if in.MinStock < 0 || (in.MaxStock > 0 && in.MaxStock < in.MinStock) {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetBySKU(in.SKU)
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	if in.Barcode != "" {
		holder, _ := uc.repo.GetByBarcode(in.Barcode)
		if holder != nil {
			return nil, domain.ErrBarcodeInUse
		}
	}
	now := time.Now()
	product := &entity.Product{
		ID:             uuid.New().String(),
		SKU:            in.SKU,
		Barcode:        in.Barcode,
		Name:           in.Name,
		Description:    in.Description,
		ProductType:    in.ProductType,
		RequiresSerial: in.RequiresSerial,
		MinStock:       in.MinStock,
		MaxStock:       in.MaxStock,
		IsActive:       true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetByBarcode busca un producto activo por código de barras; nil si no hay.
func (uc *ProductUseCase) GetByBarcode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// FindByBarcode implementa barcode.ProductFinder para el flujo de escaneo.
func (uc *ProductUseCase) FindByBarcode(_ context.Context, code string) (*entity.Product, error) {
	return uc.repo.GetByBarcode(code)
}

// Update actualiza un producto. El código de barras se cambia solo vía AssignBarcode.
func (uc *ProductUseCase) Update(id string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.Description != nil {
		product.Description = *in.Description
	}
	if in.ProductType != nil {
		if *in.ProductType != entity.ProductTypeTangible && *in.ProductType != entity.ProductTypeIntangible {
			return nil, domain.ErrInvalidInput
		}
		product.ProductType = *in.ProductType
	}
	if in.RequiresSerial != nil {
		product.RequiresSerial = *in.RequiresSerial
	}
	if in.MinStock != nil {
		product.MinStock = *in.MinStock
	}
	if in.MaxStock != nil {
		product.MaxStock = *in.MaxStock
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// AssignBarcode asocia un código de barras al producto. Falla con
// ErrBarcodeInUse si el código pertenece a otro producto activo; asignar el
// mismo código al mismo producto es idempotente.
func (uc *ProductUseCase) AssignBarcode(id, code string) (*dto.ProductResponse, error) {
	if code == "" {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	holder, err := uc.repo.GetByBarcode(code)
	if err != nil {
		return nil, err
	}
	if holder != nil && holder.ID != product.ID {
		return nil, domain.ErrBarcodeInUse
	}
	product.Barcode = code
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// SoftDelete baja lógica del producto (IsActive=false); nunca se borra físicamente.
func (uc *ProductUseCase) SoftDelete(id string) error {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

// List lista productos activos con paginación.
func (uc *ProductUseCase) List(limit, offset int) (*dto.ProductListResponse, error) {
	products, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// SetPrice fija el precio del producto para un (año, mes). Año/mes en cero
// significan el mes en curso. Se actualiza por mes; el histórico se conserva.
func (uc *ProductUseCase) SetPrice(id string, in dto.SetPriceRequest) (*dto.ProductPriceResponse, error) {
	if in.Price.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	year, month := in.Year, in.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return nil, domain.ErrInvalidInput
	}
	price := &entity.ProductPrice{
		ProductID: id,
		Year:      year,
		Month:     month,
		Price:     in.Price,
		UpdatedAt: now,
	}
	if err := uc.priceRepo.Upsert(price); err != nil {
		return nil, err
	}
	return &dto.ProductPriceResponse{ProductID: id, Year: year, Month: month, Price: price.Price}, nil
}

// CurrentPrice precio vigente del producto: la fila del (año, mes) de hoy.
// nil significa que no hay precio fijado para el mes en curso.
func (uc *ProductUseCase) CurrentPrice(id string) (*dto.ProductPriceResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	price, err := uc.priceRepo.Get(id, now.Year(), int(now.Month()))
	if err != nil {
		return nil, err
	}
	if price == nil {
		return nil, nil
	}
	return &dto.ProductPriceResponse{
		ProductID: price.ProductID,
		Year:      price.Year,
		Month:     price.Month,
		Price:     price.Price,
	}, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		ID:             p.ID,
		SKU:            p.SKU,
		Barcode:        p.Barcode,
		Name:           p.Name,
		Description:    p.Description,
		ProductType:    p.ProductType,
		RequiresSerial: p.RequiresSerial,
		MinStock:       p.MinStock,
		MaxStock:       p.MaxStock,
		IsActive:       p.IsActive,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
