package inventory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/inventario-local/internal/domain"
	"github.com/jhoicas/inventario-local/internal/domain/entity"
	"github.com/jhoicas/inventario-local/internal/domain/repository"
	"github.com/jhoicas/inventario-local/pkg/logger"
	"github.com/jhoicas/inventario-local/pkg/metrics"
)

// Mensajes de usuario emitidos por las operaciones del inventario.
const (
	msgAdded       = "Producto agregado con éxito"
	msgUpdated     = "Producto actualizado"
	msgDeleted     = "Producto eliminado"
	msgEditing     = "Editando producto"
	msgPersistFail = "Los cambios no se pudieron guardar"
)

// fallbackName frase genérica para la confirmación de borrado cuando el ID
// no corresponde a ningún producto.
const fallbackName = "este producto"

// UseCase contenedor de estado del inventario: la secuencia ordenada de
// productos vive aquí, protegida por el mutex, y cada mutación re-serializa
// la secuencia completa hacia el almacén clave-valor inyectado.
type UseCase struct {
	mu       sync.Mutex
	products []entity.Product
	lastID   int64
	editing  *int64 // ID del producto en edición, nil si no hay sesión

	store    repository.KVStore
	notifier *Notifier
	log      *logger.Logger
	metrics  *metrics.Metrics
}

// NewUseCase construye el contenedor. Llamar Load antes de operar.
func NewUseCase(store repository.KVStore, notifier *Notifier, log *logger.Logger, m *metrics.Metrics) *UseCase {
	return &UseCase{store: store, notifier: notifier, log: log, metrics: m}
}

// SampleProducts devuelve los cuatro productos de ejemplo con los que se
// siembra un almacén vacío.
func SampleProducts() []entity.Product {
	return []entity.Product{
		{ID: 1, Name: "Smartphone X", Category: entity.CategoryElectronica, Price: decimal.NewFromFloat(599.99), Quantity: 15, Location: "Zona A, Estante 2", Barcode: "7222380"},
		{ID: 2, Name: "Camiseta deportiva", Category: entity.CategoryRopa, Price: decimal.NewFromFloat(24.99), Quantity: 30, Location: "Zona B, Estante 3", Barcode: "7212480"},
		{ID: 3, Name: "Arroz integral", Category: entity.CategoryAlimentos, Price: decimal.NewFromFloat(3.49), Quantity: 50, Location: "Zona C, Estante 1", Barcode: "7213650"},
		{ID: 4, Name: "Sofá de tela", Category: entity.CategoryHogar, Price: decimal.NewFromFloat(299.99), Quantity: 5, Location: "Zona D, Estante 1", Barcode: "7223460"},
	}
}

// Load inicializa la secuencia desde el almacén. Si la clave no existe se
// siembran los datos de ejemplo y se persisten de inmediato; si el JSON
// guardado está corrupto también se cae a los datos de ejemplo, con aviso en
// el log, en lugar de abortar.
func (uc *UseCase) Load(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	raw, err := uc.store.Get(ctx, repository.KeyInventory)
	switch {
	case errors.Is(err, domain.ErrKeyNotFound):
		return uc.seedLocked(ctx)
	case err != nil:
		return fmt.Errorf("leer inventario: %w", err)
	}

	var products []entity.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		uc.log.Warn().Err(err).Msg("datos de inventario corruptos, sembrando datos de ejemplo")
		return uc.seedLocked(ctx)
	}

	uc.products = products
	uc.lastID = maxID(products)
	uc.log.Info().Int("productos", len(products)).Msg("inventario cargado")
	return nil
}

func (uc *UseCase) seedLocked(ctx context.Context) error {
	uc.products = SampleProducts()
	uc.lastID = maxID(uc.products)
	uc.metrics.SeedLoads.Inc()
	if err := uc.persistLocked(ctx); err != nil {
		return fmt.Errorf("persistir datos de ejemplo: %w", err)
	}
	uc.log.Info().Msg("almacén vacío, datos de ejemplo sembrados")
	return nil
}

// List devuelve una copia de la secuencia completa en orden de inserción.
func (uc *UseCase) List() []entity.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	out := make([]entity.Product, len(uc.products))
	copy(out, uc.products)
	return out
}

// Get devuelve el producto con el ID dado, o nil si no existe.
func (uc *UseCase) Get(id int64) *entity.Product {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	for _, p := range uc.products {
		if p.ID == id {
			out := p
			return &out
		}
	}
	return nil
}

// Visible deriva el listado visible bajo los parámetros de consulta.
func (uc *UseCase) Visible(q Query) []entity.Product {
	return Visible(uc.List(), q)
}

// Add asigna un ID nuevo al producto, lo agrega al final de la secuencia,
// persiste y notifica. El ID es derivado del reloj pero estrictamente
// monotónico: dos altas en el mismo milisegundo no colisionan.
func (uc *UseCase) Add(ctx context.Context, product entity.Product) (*entity.Product, error) {
	if !product.Valid() {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	product.ID = uc.nextIDLocked()
	uc.products = append(uc.products, product)
	uc.metrics.Mutations.WithLabelValues("add").Inc()
	uc.syncAndNotifyLocked(ctx, msgAdded, entity.SeveritySuccess)
	uc.log.Info().Int64("id", product.ID).Str("nombre", product.Name).Msg("producto agregado")
	return &product, nil
}

// Update reemplaza el producto cuyo ID coincide. Si no hay coincidencia la
// secuencia queda intacta y se devuelve nil (decisión de diseño: no es un
// error del store). Cierra la sesión de edición pendiente.
func (uc *UseCase) Update(ctx context.Context, product entity.Product) (*entity.Product, error) {
	if !product.Valid() {
		return nil, domain.ErrInvalidInput
	}

	uc.mu.Lock()
	defer uc.mu.Unlock()

	uc.editing = nil
	for i := range uc.products {
		if uc.products[i].ID == product.ID {
			uc.products[i] = product
			uc.metrics.Mutations.WithLabelValues("update").Inc()
			uc.syncAndNotifyLocked(ctx, msgUpdated, entity.SeveritySuccess)
			uc.log.Info().Int64("id", product.ID).Msg("producto actualizado")
			return &product, nil
		}
	}
	return nil, nil
}

// RemoveOutcome resultado del flujo de borrado en dos pasos.
type RemoveOutcome struct {
	Deleted bool
	Prompt  string // pregunta de confirmación cuando Deleted es false
}

// Remove elimina el producto por ID, previa confirmación. Sin confirmar, no
// muta nada ni notifica: solo devuelve la pregunta nombrando al producto (o
// la frase genérica si el ID no existe). Confirmado, elimina (no-op si ya no
// está), persiste y notifica con severidad warning.
func (uc *UseCase) Remove(ctx context.Context, id int64, confirmed bool) RemoveOutcome {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if !confirmed {
		name := fallbackName
		for _, p := range uc.products {
			if p.ID == id {
				name = fmt.Sprintf("%q", p.Name)
				break
			}
		}
		return RemoveOutcome{Prompt: fmt.Sprintf("¿Eliminar %s?", name)}
	}

	for i := range uc.products {
		if uc.products[i].ID == id {
			uc.products = append(uc.products[:i], uc.products[i+1:]...)
			break
		}
	}
	uc.metrics.Mutations.WithLabelValues("remove").Inc()
	uc.syncAndNotifyLocked(ctx, msgDeleted, entity.SeverityWarning)
	uc.log.Info().Int64("id", id).Msg("producto eliminado")
	return RemoveOutcome{Deleted: true}
}

// StartEdit abre una sesión de edición sobre el producto indicado y emite la
// notificación informativa. Devuelve nil si el ID no existe. Una sesión nueva
// reemplaza a la anterior.
func (uc *UseCase) StartEdit(id int64) *entity.Product {
	product := uc.Get(id)
	if product == nil {
		return nil
	}
	uc.mu.Lock()
	uc.editing = &id
	uc.mu.Unlock()
	uc.notifier.Notify(msgEditing, entity.SeverityInfo)
	return product
}

// CancelEdit cierra la sesión de edición sin aplicar cambios.
func (uc *UseCase) CancelEdit() {
	uc.mu.Lock()
	uc.editing = nil
	uc.mu.Unlock()
}

// Editing devuelve el ID del producto en edición, o nil si no hay sesión.
func (uc *UseCase) Editing() *int64 {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	if uc.editing == nil {
		return nil
	}
	id := *uc.editing
	return &id
}

// Stats métricas agregadas del inventario.
type Stats struct {
	TotalUnits      int
	TotalValue      decimal.Decimal
	TotalCategories int
}

// Stats calcula unidades totales, valor total (precio x cantidad) y número de
// categorías distintas presentes.
func (uc *UseCase) Stats() Stats {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	value := decimal.Zero
	units := 0
	seen := map[string]struct{}{}
	for _, p := range uc.products {
		units += p.Quantity
		value = value.Add(p.Price.Mul(decimal.NewFromInt(int64(p.Quantity))))
		seen[p.Category] = struct{}{}
	}
	return Stats{TotalUnits: units, TotalValue: value, TotalCategories: len(seen)}
}

// Notification delega en el notificador (para la capa HTTP).
func (uc *UseCase) Notification() *entity.Notification {
	return uc.notifier.Current()
}

// nextIDLocked genera un ID derivado del reloj en milisegundos, forzado a ser
// estrictamente mayor que el último asignado o cargado.
func (uc *UseCase) nextIDLocked() int64 {
	id := time.Now().UnixMilli()
	if id <= uc.lastID {
		id = uc.lastID + 1
	}
	uc.lastID = id
	return id
}

// syncAndNotifyLocked re-serializa la secuencia completa y notifica el
// resultado de la mutación. Si el almacén falla, la mutación sigue aplicada
// en memoria y el fallo se comunica con la misma mecánica de notificaciones.
func (uc *UseCase) syncAndNotifyLocked(ctx context.Context, message, severity string) {
	if err := uc.persistLocked(ctx); err != nil {
		uc.metrics.PersistFailures.Inc()
		uc.log.Error().Err(err).Msg("persistir inventario")
		uc.notifier.Notify(msgPersistFail, entity.SeverityDanger)
		return
	}
	uc.notifier.Notify(message, severity)
}

func (uc *UseCase) persistLocked(ctx context.Context) error {
	raw, err := json.Marshal(uc.products)
	if err != nil {
		return fmt.Errorf("serializar inventario: %w", err)
	}
	return uc.store.Put(ctx, repository.KeyInventory, raw)
}

func maxID(products []entity.Product) int64 {
	var max int64
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max
}
