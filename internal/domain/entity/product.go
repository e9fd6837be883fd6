package entity

import "github.com/shopspring/decimal"

func init() {
	// Los montos se persisten como números JSON planos, igual que el
	// formato histórico del archivo de datos (595.99, no "595.99").
	decimal.MarshalJSONWithoutQuotes = true
}

// Categorías fijas del inventario (deben coincidir con los valores persistidos).
const (
	CategoryElectronica = "electronica"
	CategoryRopa        = "ropa"
	CategoryAlimentos   = "alimentos"
	CategoryHogar       = "hogar"
)

// Categories lista las categorías válidas en orden de presentación.
var Categories = []string{
	CategoryElectronica,
	CategoryRopa,
	CategoryAlimentos,
	CategoryHogar,
}

var categoryNames = map[string]string{
	CategoryElectronica: "Electrónica",
	CategoryRopa:        "Ropa",
	CategoryAlimentos:   "Alimentos",
	CategoryHogar:       "Hogar",
}

// IsValidCategory indica si la categoría pertenece al conjunto fijo.
func IsValidCategory(category string) bool {
	_, ok := categoryNames[category]
	return ok
}

// CategoryDisplayName devuelve el nombre legible de la categoría, o la clave
// tal cual si no se reconoce.
func CategoryDisplayName(category string) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return category
}

// Product representa un artículo del inventario. Los nombres JSON replican el
// layout persistido bajo la clave inventory_app_data, de modo que un archivo
// de datos existente se carga sin migración.
//
// Invariantes: ID único dentro de la secuencia; Price > 0; Quantity >= 0;
// Name con al menos 3 caracteres tras recortar espacios.
type Product struct {
	ID       int64           `json:"id"`
	Name     string          `json:"name"`
	Category string          `json:"category"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
	Location string          `json:"location"`
	Barcode  string          `json:"barcode"`
}

// Valid verifica los invariantes del producto en el borde del almacén.
// La validación de formulario (mensajes por campo) vive en la capa de aplicación.
func (p Product) Valid() bool {
	return IsValidCategory(p.Category) &&
		p.Price.IsPositive() &&
		p.Quantity >= 0
}
