package localstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/config"
)

// Open construye el backend de persistencia indicado por la configuración.
func Open(ctx context.Context, cfg config.StoreConfig) (repository.KVStore, error) {
	switch cfg.Backend {
	case "", "file":
		return NewFileStore(cfg.Path)
	case "sqlite":
		return NewSQLiteStore(ctx, cfg.Path)
	case "postgres":
		if cfg.DSN == "" {
			return nil, fmt.Errorf("backend postgres requiere STORE_DSN")
		}
		return NewPostgresStore(ctx, cfg.DSN)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, fmt.Errorf("backend de almacén desconocido: %q", cfg.Backend)
	}
}
