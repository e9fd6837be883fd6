package export

import (
	"context"

	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ReportGenerator genera la representación PDF del listado de productos.
type ReportGenerator interface {
	InventoryPDF(ctx context.Context, products []entity.Product, stats inventory.Stats) ([]byte, error)
}

// SpreadsheetExporter genera la hoja de cálculo XLSX del listado.
type SpreadsheetExporter interface {
	InventoryXLSX(ctx context.Context, products []entity.Product) ([]byte, error)
}
