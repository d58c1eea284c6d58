// Package cubieapi is a small HTTP service over internal/cubie and
// internal/facelet: given a scramble or a facelet string, report
// coordinates or a validity verdict. Grounded on the teacher's
// internal/web (server.go + handlers.go), trimmed to this module's
// read-only coordinate/validation surface: no /api/solve, since
// solving is out of scope here.
package cubieapi

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Server holds the HTTP router and the logger every handler writes
// through.
type Server struct {
	router *mux.Router
	log    zerolog.Logger
}

// NewServer builds a Server with routes registered, logging through
// the given logger.
func NewServer(log zerolog.Logger) *Server {
	s := &Server{
		router: mux.NewRouter(),
		log:    log,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.Use(s.loggingMiddleware)

	api := s.router.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/coordinates", s.handleCoordinates).Methods(http.MethodPost)
	api.HandleFunc("/validate", s.handleValidate).Methods(http.MethodPost)
	api.HandleFunc("/symmetries/{index}", s.handleSymmetry).Methods(http.MethodGet)

	s.router.HandleFunc("/healthz", s.handleHealthz).Methods(http.MethodGet)
}

// ListenAndServe starts the HTTP server on addr, mirroring the
// teacher's Server.Start.
func (s *Server) ListenAndServe(addr string) error {
	s.log.Info().Str("addr", addr).Msg("starting cubieapi server")
	return http.ListenAndServe(addr, s.router)
}

func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.log.Debug().Str("method", r.Method).Str("path", r.URL.Path).Msg("request")
		next.ServeHTTP(w, r)
	})
}
