package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/interview"
	"github.com/spigell/peer-interview/internal/session"
)

const maxBodyBytes = 1 << 20

type optionsResponse struct {
	Timezones []interview.TimezoneOption `json:"timezones"`
	Weekdays  []string                   `json:"weekdays"`
}

type matchResponse struct {
	Found bool             `json:"found"`
	Match *interview.Match `json:"match"`
}

type submitResponse struct {
	Request uint64 `json:"request"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (s *Server) handleOptions(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, optionsResponse{
		Timezones: interview.Timezones,
		Weekdays:  interview.Weekdays,
	})
}

func (s *Server) handleCandidates(w http.ResponseWriter, r *http.Request) {
	pool, err := s.matcher.Candidates(r.Context())
	if err != nil {
		s.logger.Error("listing candidates", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to list candidates")
		return
	}
	items := pool.Items
	if items == nil {
		items = []interview.Candidate{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	prefs, ok := decodePreferences(w, r)
	if !ok {
		return
	}

	match, err := s.matcher.Find(r.Context(), prefs)
	if err != nil {
		s.logger.Error("finding a match", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to find a match")
		return
	}

	writeJSON(w, http.StatusOK, matchResponse{Found: match != nil, Match: match})
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess, err := s.sessions.Create()
	if err != nil {
		if errors.Is(err, session.ErrTooManySessions) {
			writeError(w, http.StatusTooManyRequests, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, sess.State())
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, sess.State())
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.sessions.Delete(mux.Vars(r)["id"]); err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleSubmitPreferences(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookupSession(w, r)
	if !ok {
		return
	}

	prefs, ok := decodePreferences(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusAccepted, submitResponse{Request: sess.Submit(prefs)})
}

func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, err := s.sessions.Get(mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return nil, false
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return nil, false
	}
	return sess, true
}

func decodePreferences(w http.ResponseWriter, r *http.Request) (interview.Preferences, bool) {
	var prefs interview.Preferences

	body := http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(body).Decode(&prefs); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return prefs, false
		}
		writeError(w, http.StatusBadRequest, "invalid request body")
		return prefs, false
	}
	return prefs, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
