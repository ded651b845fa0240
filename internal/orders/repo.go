package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct{ DB *pgxpool.Pool }

// SubmitOrderTx runs the whole submission as one transaction: resolve (or
// create) the mesa, insert the pedido header in `pendiente`, price every item
// against the live catalog and insert its detalle row, then write the total
// and commit. Any failure after BeginTx rolls back everything, including a
// mesa created for this submission.
//
// Prices come from the platos table inside the transaction, never from the
// client; the detalle rows keep that snapshot even if the catalog changes
// later.
func (r *Repo) SubmitOrderTx(ctx context.Context, sub Submission) (*Confirmation, error) {
	if err := ValidateSubmission(&sub); err != nil {
		return nil, err
	}

	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	mesaID, err := resolveMesa(ctx, tx, sub.NumeroMesa)
	if err != nil {
		return nil, err
	}

	cliente := sub.ClienteNombre
	if cliente == "" {
		cliente = DefaultCliente
	}

	var pedidoID int64
	err = tx.QueryRow(ctx, `
		INSERT INTO pedidos (mesa_id, cliente_nombre, observaciones, estado)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`, mesaID, cliente, sub.Notas, EstadoPendiente).Scan(&pedidoID)
	if err != nil {
		return nil, err
	}

	var total float64
	captured := make([]ItemPrecio, 0, len(sub.Items))
	for _, it := range sub.Items {
		var precio float64
		var nombre string
		err := tx.QueryRow(ctx,
			`SELECT precio, nombre FROM platos WHERE id = $1 AND disponible`,
			it.ProductoID).Scan(&precio, &nombre)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, &CatalogError{ProductoID: it.ProductoID}
		}
		if err != nil {
			return nil, err
		}

		total = roundCents(total + subtotal(precio, it.Cantidad))

		if _, err := tx.Exec(ctx, `
			INSERT INTO detalle_pedidos (pedido_id, plato_id, cantidad, precio_unitario, observaciones)
			VALUES ($1, $2, $3, $4, $5)`,
			pedidoID, it.ProductoID, it.Cantidad, precio, it.Notas,
		); err != nil {
			return nil, err
		}
		captured = append(captured, ItemPrecio{
			ProductoID:     it.ProductoID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: precio,
		})
	}

	if _, err := tx.Exec(ctx, `UPDATE pedidos SET total = $1 WHERE id = $2`, total, pedidoID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &Confirmation{PedidoID: pedidoID, Total: total, Items: captured}, nil
}

// resolveMesa looks up the active mesa by its number and creates it with
// defaults when absent. The partial unique index on mesas(numero) WHERE activa
// makes two racing first-time submissions converge on a single row: the loser
// of the insert re-selects the winner's.
func resolveMesa(ctx context.Context, tx pgx.Tx, numero string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM mesas WHERE numero = $1 AND activa`, numero).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	err = tx.QueryRow(ctx, `
		INSERT INTO mesas (numero, capacidad, ubicacion)
		VALUES ($1, $2, $3)
		ON CONFLICT (numero) WHERE activa DO NOTHING
		RETURNING id
	`, numero, DefaultCapacidad, DefaultUbicacion).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}

	err = tx.QueryRow(ctx, `SELECT id FROM mesas WHERE numero = $1 AND activa`, numero).Scan(&id)
	return id, err
}

// EstadoPedido reads the current status of one pedido.
func (r *Repo) EstadoPedido(ctx context.Context, pedidoID int64) (Estado, time.Time, error) {
	var estado string
	var updatedAt time.Time
	err := r.DB.QueryRow(ctx,
		`SELECT estado, updated_at FROM pedidos WHERE id = $1`,
		pedidoID).Scan(&estado, &updatedAt)
	if err != nil {
		return "", time.Time{}, err
	}
	return Estado(estado), updatedAt, nil
}

// AvanzarEstado moves a pedido from one status to the next, guarded by the
// transition table. Returns false when the pedido was not in `desde` anymore.
func (r *Repo) AvanzarEstado(ctx context.Context, pedidoID int64, desde, hacia Estado) (bool, error) {
	if !CanTransition(desde, hacia) {
		return false, fmt.Errorf("transición inválida: %s -> %s", desde, hacia)
	}
	ct, err := r.DB.Exec(ctx,
		`UPDATE pedidos SET estado = $1, updated_at = now() WHERE id = $2 AND estado = $3`,
		hacia, pedidoID, desde)
	if err != nil {
		return false, err
	}
	return ct.RowsAffected() == 1, nil
}
