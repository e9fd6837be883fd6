package inventory

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/jhoicas/inventario-local/internal/domain/entity"
)

// Opciones de ordenamiento soportadas por el listado.
const (
	SortNameAsc      = "name-asc"
	SortNameDesc     = "name-desc"
	SortPriceAsc     = "price-asc"
	SortPriceDesc    = "price-desc"
	SortQuantityAsc  = "quantity-asc"
	SortQuantityDesc = "quantity-desc"
)

// collator para comparar nombres respetando el alfabeto español (á, ñ, etc.).
var collator = collate.New(language.Spanish)

// Query parámetros de derivación del listado visible.
type Query struct {
	Search   string // subcadena, sin distinguir mayúsculas, sobre nombre, ubicación o código
	Category string // vacío = todas las categorías
	Sort     string // una de las constantes Sort*; desconocida = orden de inserción
}

// Visible calcula la secuencia visible de productos a partir del inventario y
// los parámetros de búsqueda/filtro/orden. Es una función pura: no muta la
// secuencia recibida y devuelve siempre un slice nuevo.
//
// Un producto pasa el filtro si el término de búsqueda aparece en su nombre,
// ubicación o código de barras (cualquiera de los tres) Y la categoría
// coincide (o no hay filtro de categoría). El orden es estable: productos con
// claves iguales conservan su orden de inserción.
func Visible(products []entity.Product, q Query) []entity.Product {
	term := strings.ToLower(q.Search)

	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		matchesSearch := term == "" ||
			strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Location), term) ||
			strings.Contains(strings.ToLower(p.Barcode), term)
		matchesCategory := q.Category == "" || p.Category == q.Category
		if matchesSearch && matchesCategory {
			out = append(out, p)
		}
	}

	if less := lessFunc(q.Sort); less != nil {
		sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	}
	return out
}

// lessFunc devuelve el comparador para la opción de orden, o nil si la opción
// no se reconoce (orden de inserción, nunca un error).
func lessFunc(option string) func(a, b entity.Product) bool {
	switch option {
	case SortNameAsc:
		return func(a, b entity.Product) bool { return collator.CompareString(a.Name, b.Name) < 0 }
	case SortNameDesc:
		return func(a, b entity.Product) bool { return collator.CompareString(b.Name, a.Name) < 0 }
	case SortPriceAsc:
		return func(a, b entity.Product) bool { return a.Price.LessThan(b.Price) }
	case SortPriceDesc:
		return func(a, b entity.Product) bool { return b.Price.LessThan(a.Price) }
	case SortQuantityAsc:
		return func(a, b entity.Product) bool { return a.Quantity < b.Quantity }
	case SortQuantityDesc:
		return func(a, b entity.Product) bool { return b.Quantity < a.Quantity }
	default:
		return nil
	}
}
