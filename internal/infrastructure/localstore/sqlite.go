package localstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.KVStore = (*SQLiteStore)(nil)

// SQLiteStore almacén clave-valor sobre SQLite (driver puro Go). Útil cuando
// se quiere durabilidad transaccional sin levantar un servidor de base de datos.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore abre la base en la ruta dada y asegura la tabla kv.
func NewSQLiteStore(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("abrir sqlite %s: %w", path, err)
	}
	// Un solo escritor: evita SQLITE_BUSY con el driver puro Go.
	db.SetMaxOpenConns(1)

	const schema = `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("crear tabla kv: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Get devuelve el valor bajo la clave, o domain.ErrKeyNotFound.
func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer clave %s: %w", key, err)
	}
	return value, nil
}

// Put inserta o reemplaza el valor completo bajo la clave.
func (s *SQLiteStore) Put(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("escribir clave %s: %w", key, err)
	}
	return nil
}

// Close cierra la base.
func (s *SQLiteStore) Close() error { return s.db.Close() }
