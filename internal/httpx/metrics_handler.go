package httpx

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/bellavista/ordering/internal/metrics"
)

// MetricsHandler renders the counters in Prometheus text exposition format.
// Database gauges are best-effort: an unreachable database costs the gauges,
// never the endpoint.
type MetricsHandler struct {
	Registry *metrics.Registry
	DB       *pgxpool.Pool // optional
}

func (h *MetricsHandler) Register(r *chi.Mux) {
	r.Get("/metrics", h.render)
}

func (h *MetricsHandler) render(w http.ResponseWriter, r *http.Request) {
	snap := h.Registry.Snapshot()

	var totalPedidos int64
	var revenue float64
	var dbConns int64
	if h.DB != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.DB.QueryRow(ctx,
			`SELECT COUNT(*), COALESCE(SUM(total), 0) FROM pedidos`).Scan(&totalPedidos, &revenue); err != nil {
			h.Registry.IncErrors()
		}
		if err := h.DB.QueryRow(ctx,
			`SELECT COUNT(*) FROM pg_stat_activity WHERE state = $1`, "active").Scan(&dbConns); err != nil {
			h.Registry.IncErrors()
		}
		snap = h.Registry.Snapshot() // pick up any gauge-query errors
	}

	var b strings.Builder
	counter := func(name, help string, v int64) {
		fmt.Fprintf(&b, "# HELP %s %s\n# TYPE %s counter\n%s %d\n\n", name, help, name, name, v)
	}
	gauge := func(name, help, value string) {
		fmt.Fprintf(&b, "# HELP %s %s\n# TYPE %s gauge\n%s %s\n\n", name, help, name, name, value)
	}

	counter("http_requests_total", "Total number of HTTP requests", snap.RequestsTotal)
	counter("menu_views_total", "Total number of menu page views", snap.MenuViews)
	counter("orders_submitted_total", "Total number of orders submitted", snap.OrdersSubmitted)
	gauge("orders_total", "Total number of orders in database", fmt.Sprintf("%d", totalPedidos))
	gauge("revenue_total", "Total revenue in euros", fmt.Sprintf("%.2f", revenue))
	gauge("database_connections_active", "Active database connections", fmt.Sprintf("%d", dbConns))
	counter("errors_total", "Total number of errors", snap.ErrorsTotal)
	gauge("uptime_seconds", "Application uptime in seconds", fmt.Sprintf("%d", int64(snap.Uptime.Seconds())))

	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(b.String()))
}
