package server

import (
	"net/http"

	"github.com/dineflow/backoffice/internal/audit"
	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/store"
	"github.com/dineflow/backoffice/internal/views"
)

type orderPayload struct {
	TableNumber  string   `json:"table_number"`
	CustomerName string   `json:"customer_name"`
	Items        []string `json:"items"`
	Total        float64  `json:"total"`
}

func (p orderPayload) validate() string {
	if p.TableNumber == "" || p.CustomerName == "" || len(p.Items) == 0 {
		return "table_number, customer_name and items are required"
	}
	return ""
}

func (p orderPayload) input() store.OrderInput {
	return store.OrderInput{
		TableNumber:  p.TableNumber,
		CustomerName: p.CustomerName,
		Items:        p.Items,
		Total:        p.Total,
	}
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	status := filterParam(r, "status")

	s.mu.Lock()
	filtered := views.FilterOrders(s.store.Orders, term, status)
	counts := views.CountOrders(s.store.Orders)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":  filtered,
		"counts": counts,
	})
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var payload orderPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if msg := payload.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s.mu.Lock()
	s.store.Orders = store.AddOrder(s.store.Orders, payload.input())
	created := s.store.Orders[0]
	s.mu.Unlock()

	s.recorder.Record(audit.TopicOrders, audit.EventOrderCreated, created.ID, created)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"items": s.snapshotOrders()})
}

func (s *Server) updateOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload orderPayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if msg := payload.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	s.mu.Lock()
	s.store.Orders = store.UpdateOrder(s.store.Orders, id, payload.input())
	s.mu.Unlock()

	s.recorder.Record(audit.TopicOrders, audit.EventOrderUpdated, id, payload)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotOrders()})
}

func (s *Server) deleteOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	s.store.Orders = store.DeleteOrder(s.store.Orders, id)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicOrders, audit.EventOrderDeleted, id, nil)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotOrders()})
}

func (s *Server) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	status, err := models.ParseOrderStatus(payload.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	s.store.Orders = store.SetOrderStatus(s.store.Orders, id, status)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicOrders, audit.EventOrderStatusSet, id, map[string]string{"status": string(status)})
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotOrders()})
}

func (s *Server) snapshotOrders() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Orders
}
