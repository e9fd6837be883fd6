package entity

// Modos de vista disponibles para el listado de productos.
const (
	ViewModeCards = "cards"
	ViewModeTable = "table"
)

// IsValidViewMode indica si el modo de vista es uno de los soportados.
func IsValidViewMode(mode string) bool {
	return mode == ViewModeCards || mode == ViewModeTable
}

// ViewPreferences preferencias de presentación, persistidas de forma
// independiente (cada una bajo su propia clave) y restauradas al arrancar.
type ViewPreferences struct {
	ViewMode string `json:"view_mode"` // cards | table
	DarkMode bool   `json:"dark_mode"`
}

// DefaultViewPreferences valores por defecto cuando no hay nada persistido.
func DefaultViewPreferences() ViewPreferences {
	return ViewPreferences{ViewMode: ViewModeCards, DarkMode: false}
}
