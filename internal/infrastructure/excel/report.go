package excel

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/almacen-api/internal/application/inventory"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

var _ inventory.ReportGenerator = (*ReportGenerator)(nil)

// ReportGenerator genera reportes de inventario en formato XLSX.
type ReportGenerator struct{}

// NewReportGenerator construye el generador.
func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// InventoryReport arma un libro con una fila por (producto, bodega) y el
// saldo actual. Devuelve el archivo serializado.
func (g *ReportGenerator) InventoryReport(items []*repository.StockItem) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Inventario"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("delete default sheet: %w", err)
	}

	header := []any{"SKU", "Producto", "Bodega", "Cantidad", "Stock mínimo", "Stock máximo"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	for i, item := range items {
		cell := fmt.Sprintf("A%d", i+2)
		row := []any{item.SKU, item.ProductName, item.WarehouseName, item.Quantity, item.MinStock, item.MaxStock}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", len(items)+3),
		"Generado: "+time.Now().Format("2006-01-02 15:04")); err != nil {
		return nil, fmt.Errorf("write footer: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf.Bytes(), nil
}
