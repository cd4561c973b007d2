package server

import (
	"log"
	"net/http"

	"github.com/dineflow/backoffice/internal/telemetry"
	"github.com/dineflow/backoffice/internal/views"
)

func (s *Server) revenueReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	summary := views.Revenue(s.store.Orders)
	top := views.TopDishes(s.store.Dishes, 5)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"summary":    summary,
		"top_dishes": top,
	})
}

// recordMetrics is the web-vitals beacon endpoint. Any failure, decode
// included, answers 500 with success=false.
func (s *Server) recordMetrics(w http.ResponseWriter, r *http.Request) {
	var vital telemetry.WebVital
	if err := decodeJSONBody(r, &vital); err != nil {
		log.Printf("Failed to decode web vitals payload: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]bool{"success": false})
		return
	}
	if vital.UserAgent == "" {
		vital.UserAgent = r.UserAgent()
	}
	if err := s.vitals.Record(r.Context(), vital); err != nil {
		log.Printf("Failed to record web vitals: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]bool{"success": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
