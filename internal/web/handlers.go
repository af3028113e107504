// ===== internal/web/handlers.go =====
package web

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"hostsfile/internal/export"
	"hostsfile/pkg/hosts"
	"hostsfile/pkg/models"
)

// HostsResponse is the JSON body of /api/hosts
type HostsResponse struct {
	Data   []models.Record `json:"data"`
	Path   string          `json:"path"`
	Loaded string          `json:"loaded,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// handleHosts serves the document in canonical hosts file form
func (s *Server) handleHosts(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	if err := hosts.Write(w, s.source.Document()); err != nil {
		log.Printf("Failed to write hosts response: %v", err)
	}
}

// handleHostsAPI serves the document and load status as JSON
func (s *Server) handleHostsAPI(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")

	status := s.source.Status()
	response := HostsResponse{
		Data: s.source.Document().Records(),
		Path: status.Path,
	}
	if response.Data == nil {
		response.Data = []models.Record{}
	}
	if !status.LoadedAt.IsZero() {
		response.Loaded = status.LoadedAt.Format(time.RFC3339)
	}
	if status.Err != nil {
		response.Error = status.Err.Error()
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode hosts JSON: %v", err)
		http.Error(w, `{"error":"Internal server error"}`, http.StatusInternalServerError)
	}
}

// handleZone serves the document as DNS master file lines
func (s *Server) handleZone(w http.ResponseWriter, r *http.Request) {
	rrs, err := export.Zone(s.source.Document(), s.cfg.ZoneTTL)
	if err != nil {
		log.Printf("Failed to build zone: %v", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/dns; charset=utf-8")
	for _, rr := range rrs {
		if _, err := w.Write([]byte(rr.String() + "\n")); err != nil {
			log.Printf("Failed to write zone response: %v", err)
			return
		}
	}
}
