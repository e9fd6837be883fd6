package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// ProductForm campos crudos del formulario de producto, tal como llegan del
// cliente. Price y Quantity viajan como texto: el validador decide si parsean.
// ID solo viene informado al editar; en altas la asignación queda en el store.
type ProductForm struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    string `json:"price"`
	Quantity string `json:"quantity"`
	Location string `json:"location"`
	Barcode  string `json:"barcode"`
}

// ProductResponse representación de un producto en respuestas HTTP.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	CategoryName string          `json:"category_name"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Location     string          `json:"location"`
	Barcode      string          `json:"barcode"`
}

// ProductListResponse listado derivado (filtrado y ordenado) de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}

// StatsResponse métricas agregadas del inventario.
type StatsResponse struct {
	TotalUnits      int             `json:"total_units"`
	TotalValue      decimal.Decimal `json:"total_value"`
	TotalCategories int             `json:"total_categories"`
}

// PreferencesResponse preferencias de vista vigentes.
type PreferencesResponse struct {
	ViewMode string `json:"view_mode"`
	DarkMode bool   `json:"dark_mode"`
}

// ViewModeRequest cambio del modo de vista.
type ViewModeRequest struct {
	ViewMode string `json:"view_mode"`
}

// DarkModeRequest cambio del modo oscuro.
type DarkModeRequest struct {
	DarkMode bool `json:"dark_mode"`
}

// ConfirmDeleteResponse pregunta de confirmación previa al borrado.
type ConfirmDeleteResponse struct {
	Code   string `json:"code"`
	Prompt string `json:"prompt"`
}

// ToProductResponse convierte la entidad al DTO de respuesta.
func ToProductResponse(p entity.Product) ProductResponse {
	return ProductResponse{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		CategoryName: entity.CategoryDisplayName(p.Category),
		Price:        p.Price,
		Quantity:     p.Quantity,
		Location:     p.Location,
		Barcode:      p.Barcode,
	}
}

// ToProductListResponse convierte una secuencia de entidades al DTO de listado.
func ToProductListResponse(items []entity.Product) ProductListResponse {
	out := make([]ProductResponse, 0, len(items))
	for _, p := range items {
		out = append(out, ToProductResponse(p))
	}
	return ProductListResponse{Items: out, Total: len(out)}
}
