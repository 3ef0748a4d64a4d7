package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"

	"github.com/suolenkainen/venue-simulation/sim"
)

// maxBodyBytes bounds request bodies; every body here is a handful of numbers.
const maxBodyBytes = 1 << 16

type errorResponse struct {
	Error string `json:"error"`
}

type createSessionRequest struct {
	Seed *int64 `json:"seed"` // truncated to its low 32 bits; absent means 0
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Warnf("writing response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeBody decodes a JSON body into v, rejecting unknown fields. An empty
// body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

func (s *Server) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	id := chi.URLParam(r, "id")
	sess, ok := s.sessions.Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Errorf("session %q not found", id))
	}
	return sess, ok
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok")
}

// === Venue ===

func (s *Server) handleDefaults(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.cfg.Defaults)
}

func (s *Server) handleReference(w http.ResponseWriter, _ *http.Request) {
	if s.cfg.Reference == nil {
		writeError(w, http.StatusNotFound, errors.New("no reference data loaded"))
		return
	}
	writeJSON(w, http.StatusOK, s.cfg.Reference)
}

// handleMetrics overlays the fields present in the body onto the defaults.
// "drink_sales_override": null clears an override inherited from the defaults.
func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	p := s.cfg.Defaults
	if p.DrinkSalesOverride != nil {
		v := *p.DrinkSalesOverride
		p.DrinkSalesOverride = &v
	}
	if err := decodeBody(r, &p); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := p.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, sim.SimulateVenue(p, nil))
}

// === Sessions ===

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	var seed uint32
	if req.Seed != nil {
		seed = sim.SeedFromInt64(*req.Seed)
	}
	sess, err := s.sessions.Create(seed)
	if err != nil {
		w.Header().Set("Retry-After", "60")
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	logrus.Debugf("created session %s at seed %d", sess.ID, seed)
	s.writeState(w, http.StatusCreated, sess)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.session(w, r); ok {
		s.writeState(w, http.StatusOK, sess)
	}
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !s.sessions.Delete(id) {
		writeError(w, http.StatusNotFound, fmt.Errorf("session %q not found", id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAdvance(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.session(w, r); ok {
		writeJSON(w, http.StatusOK, sess.Advance())
	}
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	if sess, ok := s.session(w, r); ok {
		sess.Reset()
		s.writeState(w, http.StatusOK, sess)
	}
}

func (s *Server) writeState(w http.ResponseWriter, status int, sess *Session) {
	st, err := sess.State()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, status, st)
}
