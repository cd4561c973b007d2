package server

import (
	"net/http"
	"time"

	"github.com/dineflow/backoffice/internal/audit"
	"github.com/dineflow/backoffice/internal/models"
	"github.com/dineflow/backoffice/internal/store"
	"github.com/dineflow/backoffice/internal/views"
)

type inventoryPayload struct {
	Name       string  `json:"name"`
	Category   string  `json:"category"`
	Quantity   float64 `json:"quantity"`
	Unit       string  `json:"unit"`
	MinStock   float64 `json:"min_stock"`
	Supplier   string  `json:"supplier"`
	Price      float64 `json:"price"`
	ExpiryDate string  `json:"expiry_date,omitempty"`
}

func (p inventoryPayload) validate() string {
	if p.Name == "" || p.Category == "" || p.Unit == "" || p.Supplier == "" {
		return "name, category, unit and supplier are required"
	}
	return ""
}

func (p inventoryPayload) input() (store.InventoryInput, error) {
	category, err := models.ParseInventoryCategory(p.Category)
	if err != nil {
		return store.InventoryInput{}, err
	}
	var expiry *time.Time
	if p.ExpiryDate != "" {
		d, err := models.ParseDate(p.ExpiryDate)
		if err != nil {
			return store.InventoryInput{}, err
		}
		expiry = &d
	}
	return store.InventoryInput{
		Name:       p.Name,
		Category:   category,
		Quantity:   p.Quantity,
		Unit:       p.Unit,
		MinStock:   p.MinStock,
		Supplier:   p.Supplier,
		Price:      p.Price,
		ExpiryDate: expiry,
	}, nil
}

// inventoryView decorates an item with its derived classifications so the
// client never has to recompute them.
type inventoryView struct {
	models.InventoryItem
	StockStatus  models.StockStatus `json:"stock_status"`
	ExpiringSoon bool               `json:"expiring_soon"`
}

func (s *Server) inventoryViews(items []models.InventoryItem, now time.Time) []inventoryView {
	out := make([]inventoryView, len(items))
	for i, item := range items {
		out[i] = inventoryView{
			InventoryItem: item,
			StockStatus:   views.StockStatusOf(item),
			ExpiringSoon:  views.IsExpiringSoon(item, now),
		}
	}
	return out
}

func (s *Server) listInventory(w http.ResponseWriter, r *http.Request) {
	term := r.URL.Query().Get("search")
	category := filterParam(r, "category")
	now := s.now()

	s.mu.Lock()
	filtered := views.FilterInventory(s.store.Inventory, term, category)
	counts := views.CountInventory(s.store.Inventory)
	stats := views.ComputeInventoryStats(s.store.Inventory, now)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"items":  s.inventoryViews(filtered, now),
		"counts": counts,
		"stats":  stats,
	})
}

func (s *Server) createInventoryItem(w http.ResponseWriter, r *http.Request) {
	var payload inventoryPayload
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
	s.store.Inventory = store.AddInventoryItem(s.store.Inventory, in, s.now())
	created := s.store.Inventory[len(s.store.Inventory)-1]
	s.mu.Unlock()

	s.recorder.Record(audit.TopicInventory, audit.EventInventoryCreated, created.ID, created)
	writeJSON(w, http.StatusCreated, map[string]interface{}{"items": s.snapshotInventory()})
}

func (s *Server) updateInventoryItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload inventoryPayload
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
	s.store.Inventory = store.UpdateInventoryItem(s.store.Inventory, id, in, s.now())
	s.mu.Unlock()

	s.recorder.Record(audit.TopicInventory, audit.EventInventoryUpdated, id, payload)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotInventory()})
}

func (s *Server) deleteInventoryItem(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	s.mu.Lock()
	s.store.Inventory = store.DeleteInventoryItem(s.store.Inventory, id)
	s.mu.Unlock()

	s.recorder.Record(audit.TopicInventory, audit.EventInventoryDeleted, id, nil)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotInventory()})
}

func (s *Server) adjustInventoryQuantity(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var payload struct {
		Delta float64 `json:"delta"`
	}
	if !decodeBody(w, r, &payload) {
		return
	}

	s.mu.Lock()
	s.store.Inventory = store.AdjustQuantity(s.store.Inventory, id, payload.Delta, s.now())
	s.mu.Unlock()

	s.recorder.Record(audit.TopicInventory, audit.EventInventoryAdjusted, id, payload)
	writeJSON(w, http.StatusOK, map[string]interface{}{"items": s.snapshotInventory()})
}

func (s *Server) snapshotInventory() []models.InventoryItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Inventory
}
