package server

import (
	"net/http"

	"github.com/dineflow/backoffice/internal/audit"
	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/store"
	"github.com/dineflow/backoffice/internal/views"
)

type staffPayload struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Phone    string  `json:"phone"`
	Email    string  `json:"email"`
	Status   string  `json:"status"`
	HireDate string  `json:"hire_date"`
	Salary   float64 `json:"salary"`
}

func (p staffPayload) validate() string {
	if p.Name == "" || p.Position == "" || p.Phone == "" || p.Email == "" || p.HireDate == "" {
		return "name, position, phone, email and hire_date are required"
	}
	return ""
}

func (p staffPayload) input() (store.StaffInput, error) {
	position, err := models.ParseStaffPosition(p.Position)
	if err != nil {
		return store.StaffInput{}, err
	}
	status := models.StaffStatusActive
	if p.Status != "" {
		status, err = models.ParseStaffStatus(p.Status)
		if err != nil {
			return store.StaffInput{}, err
		}
	}
	hireDate, err := models.ParseDate(p.HireDate)
	if err != nil {
		return store.StaffInput{}, err
	}
	return store.StaffInput{
		Name:     p.Name,
		Position: position,
		Phone:    p.Phone,
		Email:    p.Email,
		Status:   status,
		HireDate: hireDate,
		Salary:   p.Salary,
	}, nil
}

func (s *Server) listStaff(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	position := filterParam(r, "position")

	s.mu.Lock()
	filtered := views.FilterStaff(s.store.Staff, term, position)
	positions := views.CountPositions(s.store.Staff)
	statuses := views.CountStaffStatuses(s.store.Staff)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":           filtered,
		"position_counts": positions,
		"status_counts":   statuses,
	})
}

func (s *Server) createStaffMember(w http.ResponseWriter, r *http.Request) {
	var payload staffPayload
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
	s.store.Staff = store.AddStaffMember(s.store.Staff, in)
	created := s.store.Staff[len(s.store.Staff)-1]
	s.mu.Unlock()

	s.recorder.Record(audit.TopicStaff, audit.EventStaffCreated, created.ID, created)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"items": s.snapshotStaff()})
}

func (s *Server) updateStaffMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload staffPayload
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
	s.store.Staff = store.UpdateStaffMember(s.store.Staff, id, in)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicStaff, audit.EventStaffUpdated, id, payload)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotStaff()})
}

func (s *Server) deleteStaffMember(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	s.store.Staff = store.DeleteStaffMember(s.store.Staff, id)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicStaff, audit.EventStaffDeleted, id, nil)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotStaff()})
}

// setStaffStatus sets an explicit status when one is supplied, and toggles
// active/onLeave when the body carries none.
func (s *Server) setStaffStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload struct {
		Status string `json:"status"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	if payload.Status == "" {
		s.store.Staff = store.ToggleStaffLeave(s.store.Staff, id)
	} else {
		status, err := models.ParseStaffStatus(payload.Status)
		if err != nil {
			s.mu.Unlock()
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.store.Staff = store.SetStaffStatus(s.store.Staff, id, status)
	}
	s.mu.Unlock()

	s.recorder.Record(audit.TopicStaff, audit.EventStaffStatusSet, id, payload)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotStaff()})
}

func (s *Server) snapshotStaff() []models.StaffMember {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Staff
}
