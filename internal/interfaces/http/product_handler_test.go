package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-local/internal/application/dto"
	"github.com/jhoicas/inventario-local/internal/application/export"
	"github.com/jhoicas/inventario-local/internal/application/inventory"
	"github.com/jhoicas/inventario-local/internal/application/preferences"
	"github.com/jhoicas/inventario-local/internal/infrastructure/excel"
	"github.com/jhoicas/inventario-local/internal/infrastructure/localstore"
	"github.com/jhoicas/inventario-local/internal/infrastructure/pdf"
	httpiface "github.com/jhoicas/inventario-local/internal/interfaces/http"
	"github.com/jhoicas/inventario-local/pkg/logger"
	"github.com/jhoicas/inventario-local/pkg/metrics"
)

// newTestApp levanta la aplicación completa sobre un almacén en memoria, con
// la API abierta (sin secret JWT).
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	ctx := context.Background()

	store := localstore.NewMemoryStore()
	notifier := inventory.NewNotifier()
	log := logger.Nop()

	inventoryUC := inventory.NewUseCase(store, notifier, log, metrics.New(prometheus.NewRegistry()))
	require.NoError(t, inventoryUC.Load(ctx))

	preferencesUC := preferences.NewUseCase(store, log)
	require.NoError(t, preferencesUC.Load(ctx))

	exportUC := export.NewUseCase(inventoryUC, pdf.NewMarotoReportGenerator(), excel.NewExporter())

	app := fiber.New()
	httpiface.Router(app, httpiface.RouterDeps{
		InventoryUC:   inventoryUC,
		PreferencesUC: preferencesUC,
		ExportUC:      exportUC,
		Notifier:      notifier,
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, target string, body any) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado y derivación
// ──────────────────────────────────────────────────────────────────────────────

func TestListProducts_DevuelveLaSiembra(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	list := decodeBody[dto.ProductListResponse](t, resp)
	assert.Equal(t, 4, list.Total)
	require.Len(t, list.Items, 4)
	assert.Equal(t, "Smartphone X", list.Items[0].Name)
	assert.Equal(t, "Electrónica", list.Items[0].CategoryName)
}

func TestListProducts_FiltraPorCategoria(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products?category=ropa", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	list := decodeBody[dto.ProductListResponse](t, resp)
	require.Equal(t, 1, list.Total)
	assert.Equal(t, "Camiseta deportiva", list.Items[0].Name)
}

func TestListProducts_BuscaYOrdena(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products?search=zona&sort=price-desc", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	list := decodeBody[dto.ProductListResponse](t, resp)
	require.Equal(t, 4, list.Total, "todas las ubicaciones contienen 'Zona'")
	assert.Equal(t, "Smartphone X", list.Items[0].Name)
	assert.Equal(t, "Arroz integral", list.Items[3].Name)
}

func TestGetProduct_PorID(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products/2", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	product := decodeBody[dto.ProductResponse](t, resp)
	assert.Equal(t, "Camiseta deportiva", product.Name)
	assert.Equal(t, "Ropa", product.CategoryName)
}

func TestGetProduct_Inexistente404(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products/424242", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "NOT_FOUND", body.Code)
}

func TestGetProduct_IDNoNumerico400(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/products/abc", nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_ID", body.Code)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_FormularioValido201(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/products", dto.ProductForm{
		Name:     "Widget",
		Category: "hogar",
		Price:    "10",
		Quantity: "2",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := decodeBody[dto.ProductResponse](t, resp)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Widget", created.Name)
	assert.Equal(t, "No especificada", created.Location)
	assert.Equal(t, "N/A", created.Barcode)

	list := decodeBody[dto.ProductListResponse](t, doJSON(t, app, "GET", "/api/products", nil))
	assert.Equal(t, 5, list.Total)
}

func TestCreateProduct_FormularioInvalido422(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/products", dto.ProductForm{
		Name:     "ab",
		Category: "",
		Price:    "-5",
		Quantity: "",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody[dto.ValidationErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Equal(t, "Mínimo 3 caracteres", body.Errors["name"])
	assert.Equal(t, "Selecciona una categoría", body.Errors["category"])
	assert.Equal(t, "Precio inválido", body.Errors["price"])
	assert.Equal(t, "Cantidad inválida", body.Errors["quantity"])

	list := decodeBody[dto.ProductListResponse](t, doJSON(t, app, "GET", "/api/products", nil))
	assert.Equal(t, 4, list.Total, "el rechazo no debe crear nada")
}

func TestCreateProduct_IgnoraIDDelCliente(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/products", dto.ProductForm{
		ID:       7,
		Name:     "Widget",
		Category: "hogar",
		Price:    "10",
		Quantity: "2",
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	created := decodeBody[dto.ProductResponse](t, resp)
	assert.NotEqual(t, int64(7), created.ID, "el ID lo asigna el servidor")
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_Existente200(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "PUT", "/api/products/1", dto.ProductForm{
		Name:     "Smartphone X Pro",
		Category: "electronica",
		Price:    "699.99",
		Quantity: "10",
		Location: "Zona A, Estante 2",
		Barcode:  "7222380",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	updated := decodeBody[dto.ProductResponse](t, resp)
	assert.Equal(t, int64(1), updated.ID)
	assert.Equal(t, "Smartphone X Pro", updated.Name)
	assert.Equal(t, 10, updated.Quantity)
}

func TestUpdateProduct_Inexistente404(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "PUT", "/api/products/424242", dto.ProductForm{
		Name:     "Fantasma",
		Category: "hogar",
		Price:    "1",
		Quantity: "1",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	list := decodeBody[dto.ProductListResponse](t, doJSON(t, app, "GET", "/api/products", nil))
	assert.Equal(t, 4, list.Total)
}

func TestUpdateProduct_FormularioInvalido422(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "PUT", "/api/products/1", dto.ProductForm{
		Name:     "",
		Category: "electronica",
		Price:    "abc",
		Quantity: "5",
	})
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	body := decodeBody[dto.ValidationErrorResponse](t, resp)
	assert.Equal(t, "El nombre es requerido", body.Errors["name"])
	assert.Equal(t, "Precio inválido", body.Errors["price"])
}

// ──────────────────────────────────────────────────────────────────────────────
// Borrado en dos pasos
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_SinConfirmar409(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "DELETE", "/api/products/2", nil)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)

	body := decodeBody[dto.ConfirmDeleteResponse](t, resp)
	assert.Equal(t, "CONFIRM_REQUIRED", body.Code)
	assert.Equal(t, `¿Eliminar "Camiseta deportiva"?`, body.Prompt)

	list := decodeBody[dto.ProductListResponse](t, doJSON(t, app, "GET", "/api/products", nil))
	assert.Equal(t, 4, list.Total, "sin confirmar no se borra nada")
}

func TestDeleteProduct_Confirmado200(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "DELETE", "/api/products/2?confirm=true", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	body := decodeBody[map[string]bool](t, resp)
	assert.True(t, body["deleted"])

	list := decodeBody[dto.ProductListResponse](t, doJSON(t, app, "GET", "/api/products", nil))
	assert.Equal(t, 3, list.Total)

	resp = doJSON(t, app, "GET", "/api/products/2", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión de edición
// ──────────────────────────────────────────────────────────────────────────────

func TestStartEdit_EmiteNotificacion(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/products/1/edit", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	product := decodeBody[dto.ProductResponse](t, resp)
	assert.Equal(t, "Smartphone X", product.Name)

	notifResp := doJSON(t, app, "GET", "/api/notifications/current", nil)
	require.Equal(t, fiber.StatusOK, notifResp.StatusCode)
	notif := decodeBody[map[string]any](t, notifResp)
	assert.Equal(t, "Editando producto", notif["message"])
	assert.Equal(t, "info", notif["severity"])
}

func TestCancelEdit_204(t *testing.T) {
	app := newTestApp(t)

	require.Equal(t, fiber.StatusOK, doJSON(t, app, "POST", "/api/products/1/edit", nil).StatusCode)
	resp := doJSON(t, app, "DELETE", "/api/products/edit", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Stats, preferencias y notificaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestStats_SobreLaSiembra(t *testing.T) {
	app := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/stats", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	stats := decodeBody[dto.StatsResponse](t, resp)
	assert.Equal(t, 100, stats.TotalUnits)
	assert.Equal(t, 4, stats.TotalCategories)
	assert.True(t, stats.TotalValue.Equal(decimal.RequireFromString("11424.00")))
}

func TestPreferences_FlujoCompleto(t *testing.T) {
	app := newTestApp(t)

	prefs := decodeBody[dto.PreferencesResponse](t, doJSON(t, app, "GET", "/api/preferences", nil))
	assert.Equal(t, "cards", prefs.ViewMode)
	assert.False(t, prefs.DarkMode)

	prefs = decodeBody[dto.PreferencesResponse](t, doJSON(t, app, "PUT", "/api/preferences/view", dto.ViewModeRequest{ViewMode: "table"}))
	assert.Equal(t, "table", prefs.ViewMode)

	prefs = decodeBody[dto.PreferencesResponse](t, doJSON(t, app, "POST", "/api/preferences/view/toggle", nil))
	assert.Equal(t, "cards", prefs.ViewMode)

	prefs = decodeBody[dto.PreferencesResponse](t, doJSON(t, app, "PUT", "/api/preferences/dark-mode", dto.DarkModeRequest{DarkMode: true}))
	assert.True(t, prefs.DarkMode)

	resp := doJSON(t, app, "PUT", "/api/preferences/view", dto.ViewModeRequest{ViewMode: "mosaico"})
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decodeBody[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_VIEW_MODE", body.Code)
}

func TestNotifications_CicloDeVida(t *testing.T) {
	app := newTestApp(t)

	// Sin actividad no hay notificación.
	resp := doJSON(t, app, "GET", "/api/notifications/current", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	// Una mutación la emite.
	require.Equal(t, fiber.StatusCreated, doJSON(t, app, "POST", "/api/products", dto.ProductForm{
		Name: "Widget", Category: "hogar", Price: "10", Quantity: "2",
	}).StatusCode)

	resp = doJSON(t, app, "GET", "/api/notifications/current", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	notif := decodeBody[map[string]any](t, resp)
	assert.Equal(t, "Producto agregado con éxito", notif["message"])
	assert.Equal(t, "success", notif["severity"])

	// Descartar la apaga antes de expirar.
	resp = doJSON(t, app, "DELETE", "/api/notifications/current", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	resp = doJSON(t, app, "GET", "/api/notifications/current", nil)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportaciones
// ──────────────────────────────────────────────────────────────────────────────

func TestExport_PDFyXLSX(t *testing.T) {
	app := newTestApp(t)

	for _, tc := range []struct {
		path        string
		contentType string
	}{
		{"/api/export/pdf", "application/pdf"},
		{"/api/export/xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
	} {
		resp := doJSON(t, app, "GET", tc.path, nil)
		require.Equal(t, fiber.StatusOK, resp.StatusCode, tc.path)
		assert.Equal(t, tc.contentType, resp.Header.Get("Content-Type"), tc.path)
		assert.Contains(t, resp.Header.Get("Content-Disposition"), "attachment", tc.path)

		raw, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		require.NoError(t, err)
		assert.NotEmpty(t, raw, fmt.Sprintf("%s debe devolver contenido", tc.path))
	}
}
