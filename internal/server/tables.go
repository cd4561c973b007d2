package server

import (
	"net/http"

	"github.com/dineflow/backoffice/internal/audit"
	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/store"
	"github.com/dineflow/backoffice/internal/views"
)

type tablePayload struct {
	Number string `json:"number"`
	Seats  int    `json:"seats"`
	Status string `json:"status"`
	Waiter string `json:"waiter,omitempty"`
}

func (p tablePayload) validate() string {
	if p.Number == "" || p.Seats == 0 {
		return "number and seats are required"
	}
	return ""
}

func (p tablePayload) input() (store.TableInput, error) {
	status := models.TableStatusAvailable
	if p.Status != "" {
		var err error
		status, err = models.ParseTableStatus(p.Status)
		if err != nil {
			return store.TableInput{}, err
		}
	}
	return store.TableInput{
		Number: p.Number,
		Seats:  p.Seats,
		Status: status,
		Waiter: p.Waiter,
	}, nil
}

func (s *Server) listTables(w http.ResponseWriter, r *http.Request) {
	status := filterParam(r, "status")

	s.mu.Lock()
	filtered := views.FilterTables(s.store.Tables, status)
	counts := views.CountTables(s.store.Tables)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":  filtered,
		"counts": counts,
	})
}

func (s *Server) createTable(w http.ResponseWriter, r *http.Request) {
	var payload tablePayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if msg := payload.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	in, err := payload.input()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	s.store.Tables = store.AddTable(s.store.Tables, in)
	created := s.store.Tables[len(s.store.Tables)-1]
	s.mu.Unlock()

	s.recorder.Record(audit.TopicTables, audit.EventTableCreated, created.ID, created)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"items": s.snapshotTables()})
}

func (s *Server) updateTable(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload tablePayload
	if !decodeBody(w, r, &payload) {
		return
	}
	if msg := payload.validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	in, err := payload.input()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	s.store.Tables = store.UpdateTable(s.store.Tables, id, in)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicTables, audit.EventTableUpdated, id, payload)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotTables()})
}

func (s *Server) deleteTable(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	s.store.Tables = store.DeleteTable(s.store.Tables, id)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicTables, audit.EventTableDeleted, id, nil)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotTables()})
}

func (s *Server) setTableStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	status, err := models.ParseTableStatus(payload.Status)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	s.mu.Lock()
	s.store.Tables = store.SetTableStatus(s.store.Tables, id, status)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicTables, audit.EventTableStatusSet, id, map[string]string{"status": string(status)})
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotTables()})
}

func (s *Server) assignTableOrder(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload struct {
		OrderID string `json:"order_id"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}
	if payload.OrderID == "" {
		writeError(w, http.StatusBadRequest, "order_id is required")
		return
	}

	s.mu.Lock()
	s.store.Tables = store.AssignOrder(s.store.Tables, id, payload.OrderID)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicTables, audit.EventTableOrderAssigned, id, payload)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotTables()})
}

func (s *Server) clearTable(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	s.store.Tables = store.ClearTable(s.store.Tables, id)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicTables, audit.EventTableCleared, id, nil)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotTables()})
}

func (s *Server) snapshotTables() []models.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Tables
}
