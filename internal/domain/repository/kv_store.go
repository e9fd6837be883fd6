package repository

import "context"

// Claves usadas en el almacén clave-valor. Se conservan los nombres
// históricos para que los datos ya escritos se lean sin migración.
const (
	KeyInventory      = "inventory_app_data"
	KeyViewPreference = "inventory_view_preference"
	KeyDarkMode       = "darkMode"
)

// KVStore define el puerto de persistencia: un mapeo durable de claves a
// valores JSON, con escrituras de valor completo (sin parciales ni batching).
// Get debe devolver domain.ErrKeyNotFound cuando la clave no existe.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
	Close() error
}
