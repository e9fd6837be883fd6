// Package export produce reportes descargables (PDF, XLSX) del listado
// visible de productos, respetando búsqueda, filtro y orden vigentes.
package export

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/application/inventory"
)

// UseCase orquesta la derivación del listado y su render a documento.
type UseCase struct {
	inv    *inventory.UseCase
	report ReportGenerator
	sheets SpreadsheetExporter
}

// NewUseCase construye el caso de uso.
func NewUseCase(inv *inventory.UseCase, report ReportGenerator, sheets SpreadsheetExporter) *UseCase {
	return &UseCase{inv: inv, report: report, sheets: sheets}
}

// PDF genera el reporte PDF del listado visible bajo la consulta dada.
func (uc *UseCase) PDF(ctx context.Context, q inventory.Query) ([]byte, error) {
	products := uc.inv.Visible(q)
	doc, err := uc.report.InventoryPDF(ctx, products, uc.inv.Stats())
	if err != nil {
		return nil, fmt.Errorf("generar reporte PDF: %w", err)
	}
	return doc, nil
}

// XLSX genera la hoja de cálculo del listado visible bajo la consulta dada.
func (uc *UseCase) XLSX(ctx context.Context, q inventory.Query) ([]byte, error) {
	doc, err := uc.sheets.InventoryXLSX(ctx, uc.inv.Visible(q))
	if err != nil {
		return nil, fmt.Errorf("generar hoja de cálculo: %w", err)
	}
	return doc, nil
}
