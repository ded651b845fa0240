package httpx

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/bellavista/ordering/internal/menu"
	"github.com/bellavista/ordering/internal/metrics"
)

type MenuHandler struct {
	Live    *menu.LiveCatalog // nil when running without a database
	Static  *menu.StaticCatalog
	Metrics *metrics.Registry
}

func (h *MenuHandler) Register(r *chi.Mux) {
	r.Get("/api/menu", h.getMenu)
	r.Get("/api/categorias", h.getCategorias)
}

type menuResp struct {
	Success         bool             `json:"success"`
	Categorias      []menu.Categoria `json:"categorias"`
	Productos       []menu.Producto  `json:"productos"`
	Destacados      []menu.Producto  `json:"destacados"`
	UsandoDatosDemo bool             `json:"usandoDatosDemo"`
}

func (h *MenuHandler) getMenu(w http.ResponseWriter, r *http.Request) {
	if h.Metrics != nil {
		h.Metrics.IncMenuViews()
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	src, demo := menu.Pick(ctx, h.Live, h.Static)

	var categoriaID int64
	if q := r.URL.Query().Get("categoria"); q != "" {
		categoriaID, _ = strconv.ParseInt(q, 10, 64)
	}

	cats, err := src.Categories(ctx)
	if err != nil {
		h.fail(w, err)
		return
	}
	prods, err := src.Products(ctx, categoriaID)
	if err != nil {
		h.fail(w, err)
		return
	}
	feat, err := src.Featured(ctx)
	if err != nil {
		h.fail(w, err)
		return
	}

	writeJSON(w, http.StatusOK, menuResp{
		Success:         true,
		Categorias:      cats,
		Productos:       prods,
		Destacados:      feat,
		UsandoDatosDemo: demo,
	})
}

func (h *MenuHandler) getCategorias(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	src, demo := menu.Pick(ctx, h.Live, h.Static)
	cats, err := src.Categories(ctx)
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"categorias":      cats,
		"usandoDatosDemo": demo,
	})
}

// fail covers the live catalog passing its health probe and then failing
// mid-query. That is a real fault, not a fallback case.
func (h *MenuHandler) fail(w http.ResponseWriter, err error) {
	if h.Metrics != nil {
		h.Metrics.IncErrors()
	}
	writeFailure(w, http.StatusInternalServerError, err.Error())
}
