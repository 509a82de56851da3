package costcenter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// TxRunner transacción para el bootstrap: la bodega principal y sus cuatro
// secundarias se crean juntas o no se crea ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(warehouseRepo repository.WarehouseRepository) error) error
}

// UseCase aprovisionamiento de centros de costo: al primer uso de un centro
// se crea su bodega principal más las cuatro secundarias fijas
// (UM2, Plataforma, PEM, Integrador).
type UseCase struct {
	txRunner      TxRunner
	warehouseRepo repository.WarehouseRepository
}

// NewUseCase construye el caso de uso.
func NewUseCase(txRunner TxRunner, warehouseRepo repository.WarehouseRepository) *UseCase {
	return &UseCase{txRunner: txRunner, warehouseRepo: warehouseRepo}
}

// Nombres visibles de las bodegas secundarias por subtipo.
var subWarehouseNames = map[string]string{
	entity.SubWarehouseUM2:        "UM2",
	entity.SubWarehousePlataforma: "Plataforma",
	entity.SubWarehousePEM:        "PEM",
	entity.SubWarehouseIntegrador: "Integrador",
}

// EnsurePrincipal garantiza la bodega principal del centro de costo.
// Si ya existe, devuelve las bodegas del centro sin cambios (idempotente).
// Si no, crea en una sola transacción la principal y las cuatro secundarias;
// el índice único parcial sobre (cost_center) con warehouse_type=main hace
// que un doble bootstrap concurrente pierda con ErrDuplicate.
func (uc *UseCase) EnsurePrincipal(ctx context.Context, costCenter, location string) ([]*entity.Warehouse, error) {
	if costCenter == "" {
		return nil, domain.ErrInvalidInput
	}

	existing, err := uc.warehouseRepo.GetMainByCostCenter(costCenter)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return uc.warehouseRepo.ListByCostCenter(costCenter)
	}

	now := time.Now()
	main := &entity.Warehouse{
		ID:            uuid.New().String(),
		Name:          "Bodega Principal " + costCenter,
		CostCenter:    costCenter,
		WarehouseType: entity.WarehouseTypeMain,
		Location:      location,
		IsActive:      true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	created := []*entity.Warehouse{main}
	for _, subType := range entity.SubWarehouseTypes {
		created = append(created, &entity.Warehouse{
			ID:                uuid.New().String(),
			Name:              "Bodega " + subWarehouseNames[subType] + " " + costCenter,
			CostCenter:        costCenter,
			WarehouseType:     entity.WarehouseTypeSub,
			SubWarehouseType:  subType,
			ParentWarehouseID: main.ID,
			Location:          location,
			IsActive:          true,
			CreatedAt:         now,
			UpdatedAt:         now,
		})
	}

	err = uc.txRunner.Run(ctx, func(warehouseRepo repository.WarehouseRepository) error {
		for _, w := range created {
			if err := warehouseRepo.Create(w); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
