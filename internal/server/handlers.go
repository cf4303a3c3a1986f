package server

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const defaultHistoryHours = 1

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.svc.Status(r.Context()))
}

// handleHistory serves entries from the last N hours. Missing, malformed
// or non-positive hours values fall back to the default window.
func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	hours := defaultHistoryHours
	if raw := r.URL.Query().Get("hours"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed >= 1 {
			hours = parsed
		}
	}

	s.writeJSON(w, s.svc.History(hours))
}

func (s *Server) handleHost(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, s.host.Info())
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, map[string]string{
		"status":  "ok",
		"version": s.version,
		"host":    s.host.Info().Hostname,
	})
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	info := s.host.Info()

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTmpl.Execute(w, dashboardData{
		Hostname: info.Hostname,
		Platform: platformLabel(info),
	}); err != nil {
		s.log.Error().Err(err).Msg("Failed to render dashboard")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("Failed to encode response")
	}
}
