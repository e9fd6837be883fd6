package inventory

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// Valores sustituidos en los campos opcionales cuando llegan en blanco.
const (
	DefaultLocation = "No especificada"
	DefaultBarcode  = "N/A"
)

// ValidationError error de validación del formulario: un mensaje por campo.
// Las reglas son independientes, así que puede acumular varios campos a la vez.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "formulario inválido (" + strings.Join(parts, "; ") + ")"
}

// ParseForm valida los campos crudos del formulario y construye el producto.
// Nunca devuelve producto y errores a la vez: o el formulario es válido y el
// producto viene completo (con el ID original si era una edición, 0 si es un
// alta), o el producto es nil y el error trae el mapa campo -> mensaje.
func ParseForm(in dto.ProductForm) (*entity.Product, *ValidationError) {
	errs := map[string]string{}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		errs["name"] = "El nombre es requerido"
	} else if len([]rune(name)) < 3 {
		errs["name"] = "Mínimo 3 caracteres"
	}

	if in.Category == "" || !entity.IsValidCategory(in.Category) {
		errs["category"] = "Selecciona una categoría"
	}

	price, err := decimal.NewFromString(strings.TrimSpace(in.Price))
	if in.Price == "" || err != nil || !price.IsPositive() {
		errs["price"] = "Precio inválido"
	}

	quantity, err := strconv.Atoi(strings.TrimSpace(in.Quantity))
	if in.Quantity == "" || err != nil || quantity < 0 {
		errs["quantity"] = "Cantidad inválida"
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Fields: errs}
	}

	location := strings.TrimSpace(in.Location)
	if location == "" {
		location = DefaultLocation
	}
	barcode := strings.TrimSpace(in.Barcode)
	if barcode == "" {
		barcode = DefaultBarcode
	}

	return &entity.Product{
		ID:       in.ID,
		Name:     name,
		Category: in.Category,
		Price:    price,
		Quantity: quantity,
		Location: location,
		Barcode:  barcode,
	}, nil
}
