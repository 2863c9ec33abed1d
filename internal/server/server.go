package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/graphnote/ai-server/internal/completion"
	"github.com/graphnote/ai-server/internal/config"
	"github.com/graphnote/ai-server/internal/generate"
	"github.com/graphnote/ai-server/internal/logging"
)

// maxBodyBytes bounds the /generate request body.
const maxBodyBytes = 1 << 20

// Server owns the HTTP surface: routing, auth, CORS and the error-to-status
// mapping around the generation pipeline.
type Server struct {
	cfg config.Config
	svc *generate.Service
}

// New creates a Server for the given configuration and generation service.
func New(cfg config.Config, svc *generate.Service) *Server {
	return &Server{cfg: cfg, svc: svc}
}

// Router builds the mux router with the full middleware chain.
func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(requestIDMiddleware, loggingMiddleware, corsMiddleware(s.cfg.CORSOrigin))

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	// OPTIONS is routed so the CORS middleware can answer preflights.
	r.HandleFunc("/generate", s.handleGenerate).Methods(http.MethodPost, http.MethodOptions)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if !s.authorized(r) {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	defer r.Body.Close()

	var req generate.Request
	if err := json.Unmarshal(body, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	doc, err := s.svc.Generate(r.Context(), req)
	if err != nil {
		status := statusForError(err)
		logging.Logger.WithFields(requestFields(r)).WithField("status", status).Warnf("generate failed: %s", err)
		writeError(w, status, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// authorized checks the shared-secret bearer token when one is configured.
// The comparison is against the exact "Bearer <secret>" header value.
func (s *Server) authorized(r *http.Request) bool {
	if !s.cfg.AuthEnabled() {
		return true
	}
	return r.Header.Get("Authorization") == "Bearer "+s.cfg.ServerAPIKey
}

// statusForError maps pipeline failures to HTTP statuses: client input
// errors are 400, anything from the upstream taxonomy is 502, the rest 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, generate.ErrEmptyPrompt), errors.Is(err, generate.ErrPromptTooLong):
		return http.StatusBadRequest
	default:
		var upstream *completion.UpstreamError
		if errors.As(err, &upstream) {
			return http.StatusBadGateway
		}
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(value); err != nil {
		logging.Logger.WithField("error", err).Error("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
