package orders

import (
	"encoding/json"
	"time"
)

type Estado string

const (
	EstadoPendiente     Estado = "pendiente"
	EstadoEnPreparacion Estado = "en_preparacion"
	EstadoListo         Estado = "listo"
	EstadoEntregado     Estado = "entregado"
	EstadoCancelado     Estado = "cancelado"
)

var validNext = map[Estado]map[Estado]bool{
	EstadoPendiente:     {EstadoEnPreparacion: true, EstadoCancelado: true},
	EstadoEnPreparacion: {EstadoListo: true, EstadoCancelado: true},
	EstadoListo:         {EstadoEntregado: true},
	EstadoEntregado:     {},
	EstadoCancelado:     {},
}

func CanTransition(from, to Estado) bool {
	return validNext[from][to]
}

// EstadoBody is the JSON shape of the status endpoint's response. The status
// cache stores it verbatim, so every cache writer must use EstadoJSON.
type EstadoBody struct {
	Success   bool      `json:"success"`
	Estado    string    `json:"estado"`
	UpdatedAt time.Time `json:"updated_at"`
}

func EstadoJSON(estado Estado, updatedAt time.Time) []byte {
	b, err := json.Marshal(EstadoBody{Success: true, Estado: string(estado), UpdatedAt: updatedAt})
	if err != nil {
		panic(err)
	}
	return b
}
