package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/costcenter"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CostCenterHandler aprovisionamiento de centros de costo (solo admin).
type CostCenterHandler struct {
	uc *costcenter.UseCase
}

// NewCostCenterHandler construye el handler.
func NewCostCenterHandler(uc *costcenter.UseCase) *CostCenterHandler {
	return &CostCenterHandler{uc: uc}
}

// Create godoc
// @Summary      Aprovisionar centro de costo (bodega principal + 4 secundarias)
// @Tags         cost-centers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCostCenterRequest  true  "Centro de costo"
// @Success      201   {object}  dto.CostCenterResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/cost-centers [post]
func (h *CostCenterHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCostCenterRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.CostCenter == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cost_center es requerido"})
	}
	warehouses, err := h.uc.EnsurePrincipal(c.Context(), in.CostCenter, in.Location)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidInput):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "cost_center es requerido"})
		case errors.Is(err, domain.ErrDuplicate):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE", Message: "el centro de costo ya fue aprovisionado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(toCostCenterResponse(in.CostCenter, warehouses))
}

func toCostCenterResponse(costCenter string, warehouses []*entity.Warehouse) dto.CostCenterResponse {
	items := make([]dto.WarehouseResponse, 0, len(warehouses))
	for _, w := range warehouses {
		items = append(items, dto.WarehouseResponse{
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
		})
	}
	return dto.CostCenterResponse{CostCenter: costCenter, Warehouses: items}
}
