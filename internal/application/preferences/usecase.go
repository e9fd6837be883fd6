// Package preferences gestiona las preferencias de vista, cada una persistida
// bajo su propia clave del almacén y restaurada al arrancar.
package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

// UseCase contenedor de las preferencias de vista.
type UseCase struct {
	mu    sync.Mutex
	prefs entity.ViewPreferences

	store repository.KVStore
	log   *logger.Logger
}

// NewUseCase construye el contenedor con los valores por defecto.
func NewUseCase(store repository.KVStore, log *logger.Logger) *UseCase {
	return &UseCase{prefs: entity.DefaultViewPreferences(), store: store, log: log}
}

// Load restaura las preferencias persistidas. Claves ausentes o valores no
// reconocidos dejan el valor por defecto; nunca es un error fatal.
func (uc *UseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if raw, err := uc.store.Get(ctx, repository.KeyViewPreference); err == nil {
		if mode := decodeString(raw); entity.IsValidViewMode(mode) {
			uc.prefs.ViewMode = mode
		}
	} else if !errors.Is(err, domain.ErrKeyNotFound) {
		return fmt.Errorf("leer preferencia de vista: %w", err)
	}

	if raw, err := uc.store.Get(ctx, repository.KeyDarkMode); err == nil {
		uc.prefs.DarkMode = decodeString(raw) == "true"
	} else if !errors.Is(err, domain.ErrKeyNotFound) {
		return fmt.Errorf("leer modo oscuro: %w", err)
	}

	uc.log.Debug().
		Str("view_mode", uc.prefs.ViewMode).
		Bool("dark_mode", uc.prefs.DarkMode).
		Msg("preferencias cargadas")
	return nil
}

// Get devuelve las preferencias vigentes.
func (uc *UseCase) Get() entity.ViewPreferences {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.prefs
}

// SetViewMode cambia el modo de vista y lo persiste como string JSON.
func (uc *UseCase) SetViewMode(ctx context.Context, mode string) (entity.ViewPreferences, error) {
	if !entity.IsValidViewMode(mode) {
		return entity.ViewPreferences{}, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.prefs.ViewMode = mode
	raw, _ := json.Marshal(mode)
	if err := uc.store.Put(ctx, repository.KeyViewPreference, raw); err != nil {
		return uc.prefs, fmt.Errorf("persistir preferencia de vista: %w", err)
	}
	return uc.prefs, nil
}

// ToggleViewMode alterna cards <-> table y persiste.
func (uc *UseCase) ToggleViewMode(ctx context.Context) (entity.ViewPreferences, error) {
	next := entity.ViewModeCards
	if uc.Get().ViewMode == entity.ViewModeCards {
		next = entity.ViewModeTable
	}
	return uc.SetViewMode(ctx, next)
}

// SetDarkMode cambia el modo oscuro y lo persiste como booleano "true"/"false".
func (uc *UseCase) SetDarkMode(ctx context.Context, enabled bool) (entity.ViewPreferences, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.prefs.DarkMode = enabled
	raw, _ := json.Marshal(enabled)
	if err := uc.store.Put(ctx, repository.KeyDarkMode, raw); err != nil {
		return uc.prefs, fmt.Errorf("persistir modo oscuro: %w", err)
	}
	return uc.prefs, nil
}

// decodeString tolera tanto un string JSON ("cards") como el valor crudo sin
// comillas que dejan escrito algunos clientes antiguos (cards, true).
func decodeString(raw []byte) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}
