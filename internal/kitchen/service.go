package kitchen

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"

	kafkax "github.com/bellavista/ordering/internal/kafka"
	"github.com/bellavista/ordering/internal/orders"
	"github.com/bellavista/ordering/internal/redisx"
)

// StatusAdvancer is the slice of the orders repo the kitchen needs.
type StatusAdvancer interface {
	AvanzarEstado(ctx context.Context, pedidoID int64, desde, hacia orders.Estado) (bool, error)
}

type Service struct {
	Repo        StatusAdvancer
	Redis       *redis.Client // optional; nil disables dedup and status caching
	ServiceName string
}

// HandlePedidoCreado is wired as the consumer handler: a freshly committed
// pedido moves from pendiente to en_preparacion. Replayed events are dropped
// by Redis dedup, and a pedido that already moved on is left alone.
func (s *Service) HandlePedidoCreado(ctx context.Context, m kafkago.Message) error {
	var env orders.Envelope
	if err := json.Unmarshal(m.Value, &env); err != nil {
		return err
	}
	if env.EventType != orders.EventPedidoCreado {
		return nil
	}

	if s.Redis != nil {
		dkey := fmt.Sprintf(redisx.KeyDedup, "kitchen", env.EventID)
		if exists, _ := redisx.Exists(ctx, s.Redis, dkey); exists {
			return nil
		}
		_ = s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
	}

	p, err := kafkax.UnwrapPayload[orders.PedidoCreadoPayload](env.Payload)
	if err != nil {
		return err
	}

	ok, err := s.Repo.AvanzarEstado(ctx, p.PedidoID, orders.EstadoPendiente, orders.EstadoEnPreparacion)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}

	if s.Redis != nil {
		key := fmt.Sprintf(redisx.KeyEstadoPedido, p.PedidoID)
		body := orders.EstadoJSON(orders.EstadoEnPreparacion, time.Now().UTC())
		_ = s.Redis.Set(ctx, key, body, redisx.TTLEstadoCache).Err()
	}
	return nil
}
