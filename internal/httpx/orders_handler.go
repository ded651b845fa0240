package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/bellavista/ordering/internal/kafka"
	"github.com/bellavista/ordering/internal/metrics"
	"github.com/bellavista/ordering/internal/orders"
	"github.com/bellavista/ordering/internal/redisx"
)

// OrderStore is the slice of the orders repo this handler needs.
type OrderStore interface {
	SubmitOrderTx(ctx context.Context, sub orders.Submission) (*orders.Confirmation, error)
	EstadoPedido(ctx context.Context, pedidoID int64) (orders.Estado, time.Time, error)
}

type OrdersHandler struct {
	Repo     OrderStore
	Producer *kafkax.Producer // optional; nil disables eventing
	Redis    *redis.Client    // optional; nil disables status caching
	Metrics  *metrics.Registry
	Service  string
}

func (h *OrdersHandler) Register(r *chi.Mux) {
	r.Post("/api/pedidos", h.createPedido)
	r.Get("/api/pedidos/{id}", h.getEstado)
}

type pedidoResp struct {
	ID           int64   `json:"id"`
	NumeroPedido int64   `json:"numero_pedido"`
	Total        float64 `json:"total"`
}

type createResp struct {
	Success bool       `json:"success"`
	Message string     `json:"message"`
	Pedido  pedidoResp `json:"pedido"`
}

func (h *OrdersHandler) createPedido(w http.ResponseWriter, r *http.Request) {
	if h.Metrics != nil {
		h.Metrics.IncOrdersSubmitted()
	}

	var sub orders.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		writeFailure(w, http.StatusBadRequest, "JSON inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	conf, err := h.Repo.SubmitOrderTx(ctx, sub)
	if err != nil {
		var verr *orders.ValidationError
		if errors.As(err, &verr) {
			writeFailure(w, http.StatusBadRequest, verr.Reason)
			return
		}
		// catalog misses and storage faults alike: rolled back, reported as-is
		if h.Metrics != nil {
			h.Metrics.IncErrors()
		}
		writeFailure(w, http.StatusInternalServerError, err.Error())
		return
	}

	h.afterCommit(ctx, r, &sub, conf)

	writeJSON(w, http.StatusOK, createResp{
		Success: true,
		Message: "Pedido creado exitosamente",
		Pedido: pedidoResp{
			ID:           conf.PedidoID,
			NumeroPedido: conf.PedidoID,
			Total:        conf.Total,
		},
	})
}

// afterCommit runs the side effects that must never touch the transaction:
// status cache warm-up and the pedido.creado event. Both are best-effort.
func (h *OrdersHandler) afterCommit(ctx context.Context, r *http.Request, sub *orders.Submission, conf *orders.Confirmation) {
	if h.Redis != nil {
		key := fmt.Sprintf(redisx.KeyEstadoPedido, conf.PedidoID)
		_ = h.Redis.Set(ctx, key, orders.EstadoJSON(orders.EstadoPendiente, time.Now().UTC()), redisx.TTLEstadoCache).Err()
	}
	if h.Producer == nil {
		return
	}

	cliente := sub.ClienteNombre
	if cliente == "" {
		cliente = orders.DefaultCliente
	}
	ev := orders.Envelope{
		EventID:       uuid.NewString(),
		EventType:     orders.EventPedidoCreado,
		EventVersion:  1,
		OccurredAt:    time.Now().UTC(),
		Producer:      h.Service,
		TraceID:       r.Header.Get("X-Request-Id"),
		CorrelationID: strconv.FormatInt(conf.PedidoID, 10),
	}
	ev.Payload = kafkax.MustMarshal(orders.PedidoCreadoPayload{
		PedidoID:      conf.PedidoID,
		NumeroMesa:    sub.NumeroMesa,
		ClienteNombre: cliente,
		Items:         conf.Items,
		Total:         conf.Total,
	})
	h.Producer.Publish(orders.PartitionKey(conf.PedidoID), kafkax.MustMarshal(ev),
		kafkago.Header{Key: "x-event-type", Value: []byte(orders.EventPedidoCreado)},
		kafkago.Header{Key: "x-event-version", Value: []byte("1")},
	)
}

func (h *OrdersHandler) getEstado(w http.ResponseWriter, r *http.Request) {
	pedidoID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || pedidoID <= 0 {
		writeFailure(w, http.StatusBadRequest, "id de pedido inválido")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	key := fmt.Sprintf(redisx.KeyEstadoPedido, pedidoID)
	if h.Redis != nil {
		if s, err := h.Redis.Get(ctx, key).Result(); err == nil && s != "" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(s))
			return
		}
	}

	estado, updatedAt, err := h.Repo.EstadoPedido(ctx, pedidoID)
	if errors.Is(err, pgx.ErrNoRows) {
		writeFailure(w, http.StatusNotFound, "Pedido no encontrado")
		return
	}
	if err != nil {
		if h.Metrics != nil {
			h.Metrics.IncErrors()
		}
		writeFailure(w, http.StatusInternalServerError, "Error obteniendo estado del pedido")
		return
	}

	body := orders.EstadoJSON(estado, updatedAt)
	if h.Redis != nil {
		_ = h.Redis.Set(ctx, key, body, redisx.TTLEstadoCache).Err()
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}
