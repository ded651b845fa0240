package menu

import "context"

// StaticCatalog serves the built-in demonstration menu. It never fails, which
// is the whole point: the ordering pages stay browsable while the database is
// down or empty.
type StaticCatalog struct{}

func (s *StaticCatalog) Categories(ctx context.Context) ([]Categoria, error) {
	out := make([]Categoria, len(demoCategorias))
	copy(out, demoCategorias)
	return out, nil
}

func (s *StaticCatalog) Products(ctx context.Context, categoriaID int64) ([]Producto, error) {
	var out []Producto
	for _, p := range demoPlatos {
		if categoriaID > 0 && p.CategoriaID != categoriaID {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *StaticCatalog) Featured(ctx context.Context) ([]Producto, error) {
	var out []Producto
	for _, p := range demoPlatos {
		if p.Destacado {
			out = append(out, p)
		}
	}
	return out, nil
}

var demoCategorias = []Categoria{
	{ID: 1, Nombre: "Entradas", Descripcion: "Aperitivos deliciosos", Icono: "🥗"},
	{ID: 2, Nombre: "Platos Principales", Descripcion: "Nuestras especialidades", Icono: "🍖"},
	{ID: 3, Nombre: "Pastas", Descripcion: "Pasta fresca italiana", Icono: "🍝"},
	{ID: 4, Nombre: "Postres", Descripcion: "Dulces tentaciones", Icono: "🍰"},
	{ID: 5, Nombre: "Bebidas", Descripcion: "Refrescantes y especiales", Icono: "🍹"},
}

var demoPlatos = []Producto{
	// Entradas
	{ID: 1, Nombre: "Bruschetta Mediterránea", Descripcion: "Pan tostado con tomate, albahaca fresca y aceite de oliva", Precio: 12.50, CategoriaID: 1, Imagen: "🥖", Destacado: true},
	{ID: 2, Nombre: "Tabla de Quesos Artesanales", Descripcion: "Selección de quesos locales con frutos secos y miel", Precio: 18.00, CategoriaID: 1, Imagen: "🧀"},
	{ID: 3, Nombre: "Ceviche de Pescado", Descripcion: "Pescado fresco marinado en limón con cebolla morada", Precio: 16.00, CategoriaID: 1, Imagen: "🐟", Destacado: true},
	{ID: 16, Nombre: "Ensalada César Premium", Descripcion: "Lechuga romana, croutones, parmesano y aderezo césar casero", Precio: 14.50, CategoriaID: 1, Imagen: "🥗"},

	// Platos principales
	{ID: 4, Nombre: "Salmón a la Parrilla", Descripcion: "Salmón fresco con vegetales asados y salsa de limón", Precio: 28.50, CategoriaID: 2, Imagen: "🐟", Destacado: true},
	{ID: 5, Nombre: "Ribeye Premium", Descripcion: "Corte premium de 300g con papas rústicas y chimichurri", Precio: 35.00, CategoriaID: 2, Imagen: "🥩", Destacado: true},
	{ID: 6, Nombre: "Pollo Mediterráneo", Descripcion: "Pechuga de pollo con hierbas, tomates cherry y aceitunas", Precio: 22.00, CategoriaID: 2, Imagen: "🍗"},
	{ID: 17, Nombre: "Paella Valenciana", Descripcion: "Arroz tradicional con mariscos, pollo y azafrán", Precio: 32.00, CategoriaID: 2, Imagen: "🥘", Destacado: true},
	{ID: 18, Nombre: "Pulpo a la Gallega", Descripcion: "Pulpo tierno con papas, pimentón dulce y aceite de oliva", Precio: 26.00, CategoriaID: 2, Imagen: "🐙"},

	// Pastas
	{ID: 7, Nombre: "Pasta Carbonara Clásica", Descripcion: "Spaghetti con panceta, huevo, parmesano y pimienta negra", Precio: 19.50, CategoriaID: 3, Imagen: "🍝", Destacado: true},
	{ID: 8, Nombre: "Ravioli de Espinaca", Descripcion: "Pasta rellena de espinaca y ricotta con salsa de mantequilla", Precio: 21.00, CategoriaID: 3, Imagen: "🥟"},
	{ID: 9, Nombre: "Lasaña de la Casa", Descripcion: "Lasaña tradicional con carne, bechamel y queso gratinado", Precio: 24.00, CategoriaID: 3, Imagen: "🍝", Destacado: true},
	{ID: 19, Nombre: "Risotto de Champiñones", Descripcion: "Arroz cremoso con champiñones porcini y trufa", Precio: 23.50, CategoriaID: 3, Imagen: "🍚"},
	{ID: 20, Nombre: "Gnocchi al Pesto", Descripcion: "Ñoquis caseros con pesto de albahaca y piñones", Precio: 20.00, CategoriaID: 3, Imagen: "🥟"},

	// Postres
	{ID: 10, Nombre: "Tiramisú Artesanal", Descripcion: "Postre italiano con café, mascarpone y cacao", Precio: 8.50, CategoriaID: 4, Imagen: "🍰", Destacado: true},
	{ID: 11, Nombre: "Cheesecake de Frutos Rojos", Descripcion: "Cremoso cheesecake con mermelada casera de frutos rojos", Precio: 9.00, CategoriaID: 4, Imagen: "🍓"},
	{ID: 12, Nombre: "Volcán de Chocolate", Descripcion: "Bizcocho de chocolate caliente con centro líquido", Precio: 10.50, CategoriaID: 4, Imagen: "🍫", Destacado: true},
	{ID: 21, Nombre: "Crème Brûlée", Descripcion: "Crema catalana con azúcar caramelizada", Precio: 9.50, CategoriaID: 4, Imagen: "🍮"},
	{ID: 22, Nombre: "Tarta de Limón", Descripcion: "Tarta cremosa de limón con merengue italiano", Precio: 8.00, CategoriaID: 4, Imagen: "🍋"},

	// Bebidas
	{ID: 13, Nombre: "Sangría de la Casa", Descripcion: "Sangría tradicional con frutas frescas", Precio: 7.50, CategoriaID: 5, Imagen: "🍷"},
	{ID: 14, Nombre: "Limonada Artesanal", Descripcion: "Limonada fresca con hierbas aromáticas", Precio: 5.50, CategoriaID: 5, Imagen: "🍋"},
	{ID: 15, Nombre: "Café Espresso Premium", Descripcion: "Café de origen único, tostado artesanalmente", Precio: 4.00, CategoriaID: 5, Imagen: "☕", Destacado: true},
	{ID: 23, Nombre: "Mojito Clásico", Descripcion: "Ron blanco, menta fresca, lima y soda", Precio: 8.50, CategoriaID: 5, Imagen: "🍸", Destacado: true},
	{ID: 24, Nombre: "Smoothie de Frutas Tropicales", Descripcion: "Batido natural de mango, piña y maracuyá", Precio: 6.50, CategoriaID: 5, Imagen: "🥤"},
	{ID: 25, Nombre: "Vino Tinto Reserva", Descripcion: "Selección especial de nuestra bodega", Precio: 12.00, CategoriaID: 5, Imagen: "🍷"},
}
