package orders

// Defaults applied while persisting a submission.
const (
	DefaultCliente   = "Cliente"
	DefaultCapacidad = 4
	DefaultUbicacion = "interior"
)

// SubmissionItem is one requested line: a plato and how many of it.
type SubmissionItem struct {
	ProductoID int64  `json:"producto_id"`
	Cantidad   int    `json:"cantidad"`
	Notas      string `json:"notas_item,omitempty"`
}

// Submission is the inbound order request as posted by the ordering page.
type Submission struct {
	NumeroMesa    string           `json:"numero_mesa"`
	ClienteNombre string           `json:"cliente_nombre,omitempty"`
	Items         []SubmissionItem `json:"items"`
	Notas         string           `json:"notas,omitempty"`
}

// Confirmation is what a committed submission produces. Items carry the
// prices captured inside the transaction, so the post-commit event reports
// exactly what was persisted.
type Confirmation struct {
	PedidoID int64
	Total    float64
	Items    []ItemPrecio
}
