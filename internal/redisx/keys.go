package redisx

import "time"

const (
	// Cache estado pedido: estado_pedido:{pedido_id} -> {"estado": "...", "updated_at": "..."}
	KeyEstadoPedido = "estado_pedido:%d"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLEstadoCache = 5 * time.Minute
	TTLDedup       = 48 * time.Hour
)
