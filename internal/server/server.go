// Package server is the presentation boundary over the entity core: list
// endpoints return the derived view (filtered records plus aggregate
// counts), mutation endpoints validate required fields and invoke the
// store's handlers. The core itself never raises; the only errors produced
// here are incomplete input (400) and undecodable bodies.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/dineflow/backoffice/internal/audit"
	"github.com/dineflow/backoffice/internal/store"
	"github.com/dineflow/backoffice/internal/telemetry"
)

type Server struct {
	// mu serializes access to the store: the core is single-threaded by
	// design, the lock is purely a boundary concern.
	mu       sync.Mutex
	store    *store.Store
	recorder *audit.Recorder
	vitals   telemetry.Sink
	now      func() time.Time
}

func New(st *store.Store, recorder *audit.Recorder, vitals telemetry.Sink) *Server {
	return &Server{
		store:    st,
		recorder: recorder,
		vitals:   vitals,
		now:      time.Now,
	}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/orders", s.listOrders)
	mux.HandleFunc("POST /api/orders", s.createOrder)
	mux.HandleFunc("PUT /api/orders/{id}", s.updateOrder)
	mux.HandleFunc("DELETE /api/orders/{id}", s.deleteOrder)
	mux.HandleFunc("POST /api/orders/{id}/status", s.setOrderStatus)

	mux.HandleFunc("GET /api/dishes", s.listDishes)
	mux.HandleFunc("POST /api/dishes", s.createDish)
	mux.HandleFunc("PUT /api/dishes/{id}", s.updateDish)
	mux.HandleFunc("DELETE /api/dishes/{id}", s.deleteDish)
	mux.HandleFunc("POST /api/dishes/{id}/availability", s.toggleDishAvailability)

	mux.HandleFunc("GET /api/inventory", s.listInventory)
	mux.HandleFunc("POST /api/inventory", s.createInventoryItem)
	mux.HandleFunc("PUT /api/inventory/{id}", s.updateInventoryItem)
	mux.HandleFunc("DELETE /api/inventory/{id}", s.deleteInventoryItem)
	mux.HandleFunc("POST /api/inventory/{id}/adjust", s.adjustInventoryQuantity)

	mux.HandleFunc("GET /api/staff", s.listStaff)
	mux.HandleFunc("POST /api/staff", s.createStaffMember)
	mux.HandleFunc("PUT /api/staff/{id}", s.updateStaffMember)
	mux.HandleFunc("DELETE /api/staff/{id}", s.deleteStaffMember)
	mux.HandleFunc("POST /api/staff/{id}/status", s.setStaffStatus)

	mux.HandleFunc("GET /api/tables", s.listTables)
	mux.HandleFunc("POST /api/tables", s.createTable)
	mux.HandleFunc("PUT /api/tables/{id}", s.updateTable)
	mux.HandleFunc("DELETE /api/tables/{id}", s.deleteTable)
	mux.HandleFunc("POST /api/tables/{id}/status", s.setTableStatus)
	mux.HandleFunc("POST /api/tables/{id}/assign", s.assignTableOrder)
	mux.HandleFunc("POST /api/tables/{id}/clear", s.clearTable)

	mux.HandleFunc("GET /api/reports/revenue", s.revenueReport)
	mux.HandleFunc("POST /api/metrics", s.recordMetrics)

	return mux
}

// Run serves until the context is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{Addr: addr, Handler: s.Handler()}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Printf("Dashboard listening on %s", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// filterParam returns the category/status filter from the query, with the
// "all" sentinel when the parameter is absent.
func filterParam(r *http.Request, name string) string {
	if v := r.URL.Query().Get(name); v != "" {
		return v
	}
	return "all"
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func decodeJSONBody(r *http.Request, v interface{}) error {
	return json.NewDecoder(r.Body).Decode(v)
}
