package http

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// InventoryHandler consultas de saldo y exportación de inventario (protegido).
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List godoc
// @Summary      Saldos de inventario, filtrables por producto o bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        product_id    query  string  false  "Filtrar por producto"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory [get]
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	var (
		items []*repository.StockItem
		err   error
	)
	switch {
	case c.Query("warehouse_id") != "":
		items, err = h.uc.ListByWarehouse(c.Query("warehouse_id"))
	case c.Query("product_id") != "":
		items, err = h.uc.ListByProduct(c.Query("product_id"))
	default:
		items, err = h.uc.ListAll()
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toInventoryList(items))
}

// ByWarehouse godoc
// @Summary      Saldos de una bodega
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la bodega"
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory/warehouse/{id} [get]
func (h *InventoryHandler) ByWarehouse(c *fiber.Ctx) error {
	items, err := h.uc.ListByWarehouse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toInventoryList(items))
}

// ByProduct godoc
// @Summary      Saldos de un producto en todas las bodegas
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del producto"
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory/product/{id} [get]
func (h *InventoryHandler) ByProduct(c *fiber.Ctx) error {
	items, err := h.uc.ListByProduct(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toInventoryList(items))
}

// LowStock godoc
// @Summary      Pares (producto, bodega) con saldo en o bajo el mínimo
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.InventoryListResponse
// @Router       /api/inventory/low-stock [get]
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStock()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(toInventoryList(items))
}

// Export godoc
// @Summary      Exportar el inventario actual a XLSX
// @Tags         inventory
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  binary
// @Router       /api/inventory/export [get]
func (h *InventoryHandler) Export(c *fiber.Ctx) error {
	data, err := h.uc.ExportInventory()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	filename := fmt.Sprintf("inventario-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(data)
}

func toInventoryList(items []*repository.StockItem) dto.InventoryListResponse {
	out := dto.InventoryListResponse{Items: make([]dto.StockItemResponse, 0, len(items))}
	for _, item := range items {
		out.Items = append(out.Items, dto.StockItemResponse{
			ProductID:     item.ProductID,
			ProductName:   item.ProductName,
			SKU:           item.SKU,
			WarehouseID:   item.WarehouseID,
			WarehouseName: item.WarehouseName,
			Quantity:      item.Quantity,
			MinStock:      item.MinStock,
			MaxStock:      item.MaxStock,
		})
	}
	return out
}
