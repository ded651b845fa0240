package menu

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// LiveCatalog reads the menu from Postgres.
type LiveCatalog struct {
	DB *pgxpool.Pool
}

// Healthy reports whether the catalog can actually serve a menu: the database
// answers and at least one active category exists. An empty catalog falls
// back to demo data, same as an unreachable one.
func (c *LiveCatalog) Healthy(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var n int
	err := c.DB.QueryRow(ctx, `SELECT COUNT(*) FROM categorias WHERE activo`).Scan(&n)
	return err == nil && n > 0
}

func (c *LiveCatalog) Categories(ctx context.Context) ([]Categoria, error) {
	rows, err := c.DB.Query(ctx, `SELECT id, nombre, descripcion, icono
	                              FROM categorias WHERE activo ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Categoria
	for rows.Next() {
		var cat Categoria
		if err := rows.Scan(&cat.ID, &cat.Nombre, &cat.Descripcion, &cat.Icono); err != nil {
			return nil, err
		}
		out = append(out, cat)
	}
	return out, rows.Err()
}

func (c *LiveCatalog) Products(ctx context.Context, categoriaID int64) ([]Producto, error) {
	q := `SELECT id, nombre, descripcion, precio, categoria_id, imagen, destacado
	      FROM platos WHERE disponible`
	args := []any{}
	if categoriaID > 0 {
		q += ` AND categoria_id = $1`
		args = append(args, categoriaID)
	}
	q += ` ORDER BY categoria_id, id`

	rows, err := c.DB.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProductos(rows)
}

func (c *LiveCatalog) Featured(ctx context.Context) ([]Producto, error) {
	rows, err := c.DB.Query(ctx, `SELECT id, nombre, descripcion, precio, categoria_id, imagen, destacado
	                              FROM platos WHERE disponible AND destacado ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanProductos(rows)
}

type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanProductos(rows rowScanner) ([]Producto, error) {
	var out []Producto
	for rows.Next() {
		var p Producto
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Descripcion, &p.Precio, &p.CategoriaID, &p.Imagen, &p.Destacado); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
