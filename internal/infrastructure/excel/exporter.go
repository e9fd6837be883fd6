// Package excel genera la exportación XLSX del inventario.
package excel

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/inventario-local/internal/application/export"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

const sheetName = "Inventario"

var _ export.SpreadsheetExporter = (*Exporter)(nil)

// Exporter implementa export.SpreadsheetExporter usando excelize.
type Exporter struct{}

// NewExporter construye el exportador.
func NewExporter() *Exporter { return &Exporter{} }

// InventoryXLSX escribe una hoja con una fila por producto, en el orden
// visible recibido, y devuelve los bytes del archivo.
func (e *Exporter) InventoryXLSX(_ context.Context, products []entity.Product) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, fmt.Errorf("excel: renombrar hoja: %w", err)
	}

	header := []interface{}{"ID", "Nombre", "Categoría", "Precio", "Cantidad", "Ubicación", "Código de barras"}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return nil, fmt.Errorf("excel: escribir cabecera: %w", err)
	}

	for i, p := range products {
		price, _ := p.Price.Float64()
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("excel: celda de la fila %d: %w", i+2, err)
		}
		rowData := []interface{}{
			p.ID,
			p.Name,
			entity.CategoryDisplayName(p.Category),
			price,
			p.Quantity,
			p.Location,
			p.Barcode,
		}
		if err := f.SetSheetRow(sheetName, cell, &rowData); err != nil {
			return nil, fmt.Errorf("excel: escribir fila %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("excel: serializar archivo: %w", err)
	}
	return buf.Bytes(), nil
}
