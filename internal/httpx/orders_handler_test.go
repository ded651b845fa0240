package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bellavista/ordering/internal/metrics"
	"github.com/bellavista/ordering/internal/orders"
)

type fakeOrderStore struct {
	submissions []orders.Submission
	conf        *orders.Confirmation
	submitErr   error

	estado    orders.Estado
	estadoErr error
}

func (f *fakeOrderStore) SubmitOrderTx(_ context.Context, sub orders.Submission) (*orders.Confirmation, error) {
	if err := orders.ValidateSubmission(&sub); err != nil {
		return nil, err
	}
	f.submissions = append(f.submissions, sub)
	if f.submitErr != nil {
		return nil, f.submitErr
	}
	return f.conf, nil
}

func (f *fakeOrderStore) EstadoPedido(_ context.Context, _ int64) (orders.Estado, time.Time, error) {
	if f.estadoErr != nil {
		return "", time.Time{}, f.estadoErr
	}
	return f.estado, time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC), nil
}

func newTestRouter(store *fakeOrderStore) (http.Handler, *metrics.Registry) {
	reg := metrics.New()
	r := NewRouter(reg)
	h := &OrdersHandler{Repo: store, Metrics: reg, Service: "test"}
	h.Register(r)
	return r, reg
}

func postPedido(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/pedidos", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreatePedidoSuccess(t *testing.T) {
	store := &fakeOrderStore{conf: &orders.Confirmation{PedidoID: 11, Total: 39.00}}
	h, _ := newTestRouter(store)

	rec := postPedido(t, h, `{"numero_mesa":"5","items":[{"producto_id":7,"cantidad":2}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		Pedido  struct {
			ID           int64   `json:"id"`
			NumeroPedido int64   `json:"numero_pedido"`
			Total        float64 `json:"total"`
		} `json:"pedido"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Pedido creado exitosamente", resp.Message)
	assert.Equal(t, int64(11), resp.Pedido.ID)
	assert.Equal(t, int64(11), resp.Pedido.NumeroPedido)
	assert.Equal(t, 39.00, resp.Pedido.Total)

	require.Len(t, store.submissions, 1)
	assert.Equal(t, "5", store.submissions[0].NumeroMesa)
}

func TestCreatePedidoInvalidJSON(t *testing.T) {
	store := &fakeOrderStore{}
	h, _ := newTestRouter(store)

	rec := postPedido(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.submissions)
}

func TestCreatePedidoValidationFailure(t *testing.T) {
	store := &fakeOrderStore{}
	h, reg := newTestRouter(store)

	rec := postPedido(t, h, `{"numero_mesa":"5","items":[]}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Faltan campos requeridos: numero_mesa, items", resp["message"])

	assert.Empty(t, store.submissions, "nothing reaches the store on a validation failure")
	assert.Equal(t, int64(0), reg.Snapshot().ErrorsTotal, "validation is a client error, not ours")
}

func TestCreatePedidoCatalogFailure(t *testing.T) {
	store := &fakeOrderStore{submitErr: &orders.CatalogError{ProductoID: 999}}
	h, reg := newTestRouter(store)

	rec := postPedido(t, h, `{"numero_mesa":"5","items":[{"producto_id":7,"cantidad":1},{"producto_id":999,"cantidad":1}]}`)
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Producto con ID 999 no disponible", resp["message"])
	assert.Equal(t, int64(1), reg.Snapshot().ErrorsTotal)
}

func TestGetEstado(t *testing.T) {
	store := &fakeOrderStore{estado: orders.EstadoEnPreparacion}
	h, _ := newTestRouter(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pedidos/11", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Success bool   `json:"success"`
		Estado  string `json:"estado"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "en_preparacion", resp.Estado)
}

// The status endpoint serves cached bodies verbatim, so whatever any cache
// writer stores must carry the same keys as the DB-backed response.
func TestGetEstadoCacheBodyMatchesResponseShape(t *testing.T) {
	store := &fakeOrderStore{estado: orders.EstadoEnPreparacion}
	h, _ := newTestRouter(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pedidos/11", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fromDB map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fromDB))

	var fromCache map[string]any
	cached := orders.EstadoJSON(orders.EstadoEnPreparacion, time.Now().UTC())
	require.NoError(t, json.Unmarshal(cached, &fromCache))

	for key := range fromDB {
		assert.Contains(t, fromCache, key)
	}
	for key := range fromCache {
		assert.Contains(t, fromDB, key)
	}
	assert.Equal(t, true, fromCache["success"])
	assert.Equal(t, "en_preparacion", fromCache["estado"])
}

func TestGetEstadoNotFound(t *testing.T) {
	store := &fakeOrderStore{estadoErr: pgx.ErrNoRows}
	h, _ := newTestRouter(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pedidos/404", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetEstadoBadID(t *testing.T) {
	store := &fakeOrderStore{}
	h, _ := newTestRouter(store)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pedidos/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
