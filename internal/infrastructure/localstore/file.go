// Package localstore implementa el puerto KVStore con varios backends
// locales intercambiables: archivo JSON (por defecto), SQLite, PostgreSQL y
// memoria (tests). Todos comparten la misma semántica: claves de texto,
// valores JSON escritos completos en cada Put.
package localstore

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
)

var _ repository.KVStore = (*FileStore)(nil)

// FileStore almacén clave-valor sobre un único archivo JSON. Cada Put
// reescribe el archivo completo vía archivo temporal + rename, de modo que un
// corte a mitad de escritura nunca deja el archivo truncado.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

// NewFileStore abre (o crea) el almacén en la ruta dada.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, data: map[string]json.RawMessage{}}

	raw, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("leer almacén %s: %w", path, err)
	}

	if err := json.Unmarshal(raw, &s.data); err != nil {
		// Archivo ilegible: se arranca vacío y la siguiente escritura lo
		// reemplaza. La capa de aplicación decide el fallback (datos de ejemplo).
		s.data = map[string]json.RawMessage{}
	}
	return s, nil
}

// Get devuelve el valor bajo la clave, o domain.ErrKeyNotFound.
func (s *FileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.data[key]
	if !ok {
		return nil, domain.ErrKeyNotFound
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, nil
}

// Put escribe el valor y vuelca el mapa completo a disco.
func (s *FileStore) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make(json.RawMessage, len(value))
	copy(cp, value)
	s.data[key] = cp
	return s.flushLocked()
}

// Close no mantiene recursos abiertos entre operaciones.
func (s *FileStore) Close() error { return nil }

func (s *FileStore) flushLocked() error {
	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("serializar almacén: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("crear directorio %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".inventario-*.json")
	if err != nil {
		return fmt.Errorf("crear archivo temporal: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("escribir almacén: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("cerrar archivo temporal: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("reemplazar almacén: %w", err)
	}
	return nil
}
