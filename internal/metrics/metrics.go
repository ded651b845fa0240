package metrics

import (
	"net/http"
	"sync/atomic"
	"time"
)

// Registry holds the process-wide request counters. It is created once at
// startup and shared by handlers; readers only ever see a Snapshot, so the
// counters never leak into any transactional code path.
type Registry struct {
	start time.Time

	requests        atomic.Int64
	menuViews       atomic.Int64
	ordersSubmitted atomic.Int64
	errors          atomic.Int64
}

func New() *Registry {
	return &Registry{start: time.Now()}
}

func (r *Registry) IncMenuViews()       { r.menuViews.Add(1) }
func (r *Registry) IncOrdersSubmitted() { r.ordersSubmitted.Add(1) }
func (r *Registry) IncErrors()          { r.errors.Add(1) }

// Snapshot is a read-only copy of the counters at one instant.
type Snapshot struct {
	RequestsTotal   int64
	MenuViews       int64
	OrdersSubmitted int64
	ErrorsTotal     int64
	Uptime          time.Duration
}

func (r *Registry) Snapshot() Snapshot {
	return Snapshot{
		RequestsTotal:   r.requests.Load(),
		MenuViews:       r.menuViews.Load(),
		OrdersSubmitted: r.ordersSubmitted.Load(),
		ErrorsTotal:     r.errors.Load(),
		Uptime:          time.Since(r.start),
	}
}

// CountRequests is router middleware tallying every request served.
func (r *Registry) CountRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		r.requests.Add(1)
		next.ServeHTTP(w, req)
	})
}
