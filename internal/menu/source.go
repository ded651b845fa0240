package menu

import "context"

type Categoria struct {
	ID          int64  `json:"id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion"`
	Icono       string `json:"icono,omitempty"`
}

type Producto struct {
	ID          int64   `json:"id"`
	Nombre      string  `json:"nombre"`
	Descripcion string  `json:"descripcion"`
	Precio      float64 `json:"precio"`
	CategoriaID int64   `json:"categoria_id"`
	Imagen      string  `json:"imagen,omitempty"`
	Destacado   bool    `json:"destacado"`
}

// Source is where the menu comes from: the live catalog in Postgres, or the
// built-in demo data when the database is not usable. categoriaID = 0 means
// all categories.
type Source interface {
	Categories(ctx context.Context) ([]Categoria, error)
	Products(ctx context.Context, categoriaID int64) ([]Producto, error)
	Featured(ctx context.Context) ([]Producto, error)
}

// Pick runs the live catalog's health probe and decides which source serves
// this request. The second result reports whether demo data is being used.
func Pick(ctx context.Context, live *LiveCatalog, demo *StaticCatalog) (Source, bool) {
	if live != nil && live.Healthy(ctx) {
		return live, false
	}
	return demo, true
}
