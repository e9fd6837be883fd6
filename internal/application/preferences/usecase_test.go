package preferences_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/preferences"
	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
	"github.com/jhoicas/inventario-local/pkg/logger"
)

func newTestUseCase(t *testing.T) (*preferences.UseCase, *localstore.MemoryStore) {
	t.Helper()
	store := localstore.NewMemoryStore()
	uc := preferences.NewUseCase(store, logger.Nop())
	require.NoError(t, uc.Load(context.Background()))
	return uc, store
}

// Caso 1: almacén vacío arranca con los valores por defecto.
func TestLoad_AlmacenVacioUsaDefaults(t *testing.T) {
	uc, _ := newTestUseCase(t)

	prefs := uc.Get()
	assert.Equal(t, entity.ViewModeCards, prefs.ViewMode)
	assert.False(t, prefs.DarkMode)
}

// Caso 2: valores persistidos como strings JSON se restauran.
func TestLoad_RestauraValoresPersistidos(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, repository.KeyViewPreference, []byte(`"table"`)))
	require.NoError(t, store.Put(ctx, repository.KeyDarkMode, []byte(`true`)))

	uc := preferences.NewUseCase(store, logger.Nop())
	require.NoError(t, uc.Load(ctx))

	prefs := uc.Get()
	assert.Equal(t, entity.ViewModeTable, prefs.ViewMode)
	assert.True(t, prefs.DarkMode)
}

// Caso 3: valores crudos sin comillas (clientes antiguos) también se aceptan.
func TestLoad_ToleraValoresCrudos(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, repository.KeyViewPreference, []byte(`table`)))
	require.NoError(t, store.Put(ctx, repository.KeyDarkMode, []byte(`true`)))

	uc := preferences.NewUseCase(store, logger.Nop())
	require.NoError(t, uc.Load(ctx))

	prefs := uc.Get()
	assert.Equal(t, entity.ViewModeTable, prefs.ViewMode)
	assert.True(t, prefs.DarkMode)
}

// Caso 4: un modo de vista no reconocido en el almacén cae al valor por defecto.
func TestLoad_ModoDesconocidoCaeAlDefault(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, repository.KeyViewPreference, []byte(`"mosaico"`)))

	uc := preferences.NewUseCase(store, logger.Nop())
	require.NoError(t, uc.Load(ctx))

	assert.Equal(t, entity.ViewModeCards, uc.Get().ViewMode)
}

func TestSetViewMode_PersisteComoStringJSON(t *testing.T) {
	ctx := context.Background()
	uc, store := newTestUseCase(t)

	prefs, err := uc.SetViewMode(ctx, entity.ViewModeTable)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewModeTable, prefs.ViewMode)

	raw, err := store.Get(ctx, repository.KeyViewPreference)
	require.NoError(t, err)
	assert.Equal(t, `"table"`, string(raw))
}

func TestSetViewMode_RechazaModoInvalido(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.SetViewMode(context.Background(), "mosaico")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, entity.ViewModeCards, uc.Get().ViewMode, "el rechazo no debe mutar nada")
}

func TestToggleViewMode_AlternaYPersiste(t *testing.T) {
	ctx := context.Background()
	uc, _ := newTestUseCase(t)

	prefs, err := uc.ToggleViewMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewModeTable, prefs.ViewMode)

	prefs, err = uc.ToggleViewMode(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.ViewModeCards, prefs.ViewMode)
}

func TestSetDarkMode_PersisteBooleano(t *testing.T) {
	ctx := context.Background()
	uc, store := newTestUseCase(t)

	prefs, err := uc.SetDarkMode(ctx, true)
	require.NoError(t, err)
	assert.True(t, prefs.DarkMode)

	raw, err := store.Get(ctx, repository.KeyDarkMode)
	require.NoError(t, err)
	assert.Equal(t, "true", string(raw))

	prefs, err = uc.SetDarkMode(ctx, false)
	require.NoError(t, err)
	assert.False(t, prefs.DarkMode)
}

// Las preferencias sobreviven un reinicio leyendo del mismo almacén.
func TestPreferencias_SobrevivenReinicio(t *testing.T) {
	ctx := context.Background()
	uc, store := newTestUseCase(t)

	_, err := uc.SetViewMode(ctx, entity.ViewModeTable)
	require.NoError(t, err)
	_, err = uc.SetDarkMode(ctx, true)
	require.NoError(t, err)

	reloaded := preferences.NewUseCase(store, logger.Nop())
	require.NoError(t, reloaded.Load(ctx))

	prefs := reloaded.Get()
	assert.Equal(t, entity.ViewModeTable, prefs.ViewMode)
	assert.True(t, prefs.DarkMode)
}
