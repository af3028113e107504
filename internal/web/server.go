// ===== internal/web/server.go =====
package web

import (
	"log"
	"net/http"

	"hostsfile/internal/config"
	"hostsfile/internal/monitor"
	"hostsfile/pkg/models"
)

// Source provides the document being served
type Source interface {
	Document() *models.Document
	Status() monitor.Status
}

// Server represents the HTTP server
type Server struct {
	cfg    *config.Config
	source Source
	mux    *http.ServeMux
}

// NewServer creates a new web server
func NewServer(cfg *config.Config, source Source) *Server {
	server := &Server{
		cfg:    cfg,
		source: source,
		mux:    http.NewServeMux(),
	}

	server.setupRoutes()

	return server
}

// Start starts the HTTP server
func (s *Server) Start() error {
	return http.ListenAndServe(s.cfg.HTTPListen, s)
}

// ServeHTTP logs the request and dispatches it
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	log.Printf("Request from %s: %s %s", r.RemoteAddr, r.Method, r.URL.String())

	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		w.Header().Set("Allow", "GET, HEAD")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mux.ServeHTTP(w, r)
}

// setupRoutes configures HTTP routes
func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/hosts", s.handleHosts)
	s.mux.HandleFunc("/api/hosts", s.handleHostsAPI)
	s.mux.HandleFunc("/api/zone", s.handleZone)
}
