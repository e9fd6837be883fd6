package localstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.KVStore = (*PostgresStore)(nil)

// PostgresStore almacén clave-valor sobre PostgreSQL, para instalaciones que
// ya tienen un servidor disponible y quieren respaldos centralizados.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore conecta al DSN dado y asegura la tabla kv.
func NewPostgresStore(ctx context.Context, dsn string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("conectar a PostgreSQL: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping a PostgreSQL: %w", err)
	}

	const schema = `
		CREATE TABLE IF NOT EXISTS kv (
			key   TEXT PRIMARY KEY,
			value JSONB NOT NULL
		)`
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("crear tabla kv: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

// Get devuelve el valor bajo la clave, o domain.ErrKeyNotFound.
func (s *PostgresStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.pool.QueryRow(ctx, `SELECT value FROM kv WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("leer clave %s: %w", key, err)
	}
	return value, nil
}

// Put inserta o reemplaza el valor completo bajo la clave (UPSERT).
func (s *PostgresStore) Put(ctx context.Context, key string, value []byte) error {
	const query = `
		INSERT INTO kv (key, value) VALUES ($1, $2)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		return fmt.Errorf("escribir clave %s: %w", key, err)
	}
	return nil
}

// Close libera el pool de conexiones.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}
