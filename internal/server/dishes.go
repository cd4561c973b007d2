package server

import (
	"net/http"

	"github.com/dineflow/backoffice/internal/audit"
	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/store"
	"github.com/dineflow/backoffice/internal/views"
)

type dishPayload struct {
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Available   bool    `json:"available"`
}

func (p dishPayload) validate() string {
	if p.Name == "" || p.Category == "" || p.Description == "" {
		return "name, category and description are required"
	}
	return ""
}

func (p dishPayload) input() (store.DishInput, error) {
	category, err := models.ParseDishCategory(p.Category)
	if err != nil {
		return store.DishInput{}, err
	}
	return store.DishInput{
		Name:        p.Name,
		Category:    category,
		Price:       p.Price,
		Description: p.Description,
		Available:   p.Available,
	}, nil
}

func (s *Server) listDishes(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	category := filterParam(r, "category")

	s.mu.Lock()
	filtered := views.FilterDishes(s.store.Dishes, term, category)
	counts := views.CountDishes(s.store.Dishes)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":  filtered,
		"counts": counts,
	})
}

func (s *Server) createDish(w http.ResponseWriter, r *http.Request) {
	var payload dishPayload
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
	s.store.Dishes = store.AddDish(s.store.Dishes, in)
	created := s.store.Dishes[len(s.store.Dishes)-1]
	s.mu.Unlock()

	s.recorder.Record(audit.TopicDishes, audit.EventDishCreated, created.ID, created)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"items": s.snapshotDishes()})
}

func (s *Server) updateDish(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload dishPayload
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
	s.store.Dishes = store.UpdateDish(s.store.Dishes, id, in)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicDishes, audit.EventDishUpdated, id, payload)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotDishes()})
}

func (s *Server) deleteDish(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	s.store.Dishes = store.DeleteDish(s.store.Dishes, id)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicDishes, audit.EventDishDeleted, id, nil)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotDishes()})
}

func (s *Server) toggleDishAvailability(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	s.store.Dishes = store.ToggleDishAvailability(s.store.Dishes, id)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicDishes, audit.EventDishToggled, id, nil)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotDishes()})
}

func (s *Server) snapshotDishes() []models.Dish {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Dishes
}
