package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// WarehouseUseCase casos de uso CRUD para bodegas. El alta masiva de un
// centro de costo nuevo pasa por el bootstrap de costcenter, no por aquí.
type WarehouseUseCase struct {
	repo repository.WarehouseRepository
}

// NewWarehouseUseCase construye el caso de uso.
func NewWarehouseUseCase(repo repository.WarehouseRepository) *WarehouseUseCase {
	return &WarehouseUseCase{repo: repo}
}

// Create crea una bodega. Una bodega sub exige subtipo válido y bodega padre;
// una main no admite ninguno de los dos. Un centro de costo solo puede tener
// una bodega principal.
func (uc *WarehouseUseCase) Create(in dto.CreateWarehouseRequest) (*dto.WarehouseResponse, error) {
	if in.Name == "" || in.CostCenter == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.WarehouseType {
	case entity.WarehouseTypeMain:
		if in.SubWarehouseType != "" || in.ParentWarehouseID != "" {
			return nil, domain.ErrInvalidInput
		}
		existing, err := uc.repo.GetMainByCostCenter(in.CostCenter)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, domain.ErrDuplicate
		}
	case entity.WarehouseTypeSub:
		if !isValidSubType(in.SubWarehouseType) || in.ParentWarehouseID == "" {
			return nil, domain.ErrInvalidInput
		}
		parent, err := uc.repo.GetByID(in.ParentWarehouseID)
		if err != nil {
			return nil, err
		}
		if parent == nil || parent.WarehouseType != entity.WarehouseTypeMain {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	now := time.Now()
	warehouse := &entity.Warehouse{
		ID:                uuid.New().String(),
		Name:              in.Name,
		CostCenter:        in.CostCenter,
		WarehouseType:     in.WarehouseType,
		SubWarehouseType:  in.SubWarehouseType,
		ParentWarehouseID: in.ParentWarehouseID,
		Location:          in.Location,
		IsActive:          true,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := uc.repo.Create(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// GetByID obtiene una bodega por ID.
func (uc *WarehouseUseCase) GetByID(id string) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	return toWarehouseResponse(warehouse), nil
}

// Update actualiza nombre y ubicación. Tipo, subtipo y centro de costo son inmutables.
func (uc *WarehouseUseCase) Update(id string, in dto.UpdateWarehouseRequest) (*dto.WarehouseResponse, error) {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, nil
	}
	if in.Name != nil {
		if *in.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		warehouse.Name = *in.Name
	}
	if in.Location != nil {
		warehouse.Location = *in.Location
	}
	warehouse.UpdatedAt = time.Now()
	if err := uc.repo.Update(warehouse); err != nil {
		return nil, err
	}
	return toWarehouseResponse(warehouse), nil
}

// SoftDelete baja lógica de la bodega.
func (uc *WarehouseUseCase) SoftDelete(id string) error {
	warehouse, err := uc.repo.GetByID(id)
	if err != nil {
		return err
	}
	if warehouse == nil {
		return domain.ErrNotFound
	}
	return uc.repo.SoftDelete(id)
}

// List lista bodegas activas con paginación.
func (uc *WarehouseUseCase) List(limit, offset int) (*dto.WarehouseListResponse, error) {
	warehouses, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		items = append(items, *toWarehouseResponse(w))
	}
	return &dto.WarehouseListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func isValidSubType(subType string) bool {
	for _, s := range entity.SubWarehouseTypes {
		if s == subType {
			return true
		}
	}
	return false
}

func toWarehouseResponse(w *entity.Warehouse) *dto.WarehouseResponse {
	if w == nil {
		return nil
	}
	return &dto.WarehouseResponse{
		ID:                w.ID,
		Name:              w.Name,
		CostCenter:        w.CostCenter,
		WarehouseType:     w.WarehouseType,
		SubWarehouseType:  w.SubWarehouseType,
		ParentWarehouseID: w.ParentWarehouseID,
		Location:          w.Location,
		IsActive:          w.IsActive,
		CreatedAt:         w.CreatedAt,
		UpdatedAt:         w.UpdatedAt,
	}
}
