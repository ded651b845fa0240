package orders

import (
	"encoding/json"
	"time"
)

const EventPedidoCreado = "PedidoCreado"

type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	TraceID       string          `json:"trace_id,omitempty"`
	CorrelationID string          `json:"correlation_id,omitempty"` // pedido id
	Payload       json.RawMessage `json:"payload"`
}

// ItemPrecio is one order line with the price captured at submission time.
type ItemPrecio struct {
	ProductoID     int64   `json:"producto_id"`
	Cantidad       int     `json:"cantidad"`
	PrecioUnitario float64 `json:"precio_unitario"`
}

type PedidoCreadoPayload struct {
	PedidoID      int64        `json:"pedido_id"`
	NumeroMesa    string       `json:"numero_mesa"`
	ClienteNombre string       `json:"cliente_nombre"`
	Items         []ItemPrecio `json:"items"`
	Total         float64      `json:"total"`
}
