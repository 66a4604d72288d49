package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/interview"
	"github.com/spigell/peer-interview/internal/logger"
)

type Status string

const (
	StatusIdle      Status = "idle"
	StatusSearching Status = "searching"
	StatusFound     Status = "found"
	StatusNotFound  Status = "not_found"
	StatusFailed    Status = "failed"
)

var ErrUnknownRequest = errors.New("request was never submitted")

// Finder performs a single lookup.
type Finder interface {
	Find(ctx context.Context, prefs interview.Preferences) (*interview.Match, error)
}

// State is a snapshot of a session. Every handed out State is a deep copy.
type State struct {
	ID          string                `json:"id"`
	Request     uint64                `json:"request"`
	Preferences interview.Preferences `json:"preferences"`
	Status      Status                `json:"status"`
	Match       *interview.Match      `json:"match,omitempty"`
	Error       string                `json:"error,omitempty"`
	UpdatedAt   time.Time             `json:"updatedAt"`
}

// Done reports whether the lookup for this state has resolved.
func (s State) Done() bool {
	return s.Status != StatusSearching
}

func (s State) clone() State {
	s.Preferences = s.Preferences.Clone()
	s.Match = s.Match.Clone()
	return s
}

// Session holds one user's preferences and the match derived from them.
// Preferences change only through Submit; lookups that were superseded by a
// later Submit are cancelled and their results discarded.
type Session struct {
	id     string
	finder Finder
	logger *zap.Logger
	stop   context.CancelFunc
	ctx    context.Context

	mu      sync.Mutex
	state   State
	cancel  context.CancelFunc
	changed chan struct{}
}

func New(finder Finder, log *zap.Logger) *Session {
	id := uuid.NewString()
	ctx, stop := context.WithCancel(context.Background())

	return &Session{
		id:      id,
		finder:  finder,
		logger:  logger.WithFields(log, zap.String(logger.FieldSessionID, id)),
		ctx:     ctx,
		stop:    stop,
		state:   State{ID: id, Status: StatusIdle, UpdatedAt: time.Now().UTC()},
		changed: make(chan struct{}),
	}
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Submit replaces the preferences and starts a lookup for them.
// It returns the request id identifying that lookup.
func (s *Session) Submit(prefs interview.Preferences) uint64 {
	prefs = prefs.Clone()

	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}

	req := s.state.Request + 1
	ctx, cancel := context.WithCancel(s.ctx)
	s.cancel = cancel
	s.state = State{
		ID:          s.id,
		Request:     req,
		Preferences: prefs,
		Status:      StatusSearching,
		UpdatedAt:   time.Now().UTC(),
	}
	s.notifyLocked()
	s.mu.Unlock()

	s.logger.Debug("lookup submitted", append(logger.PreferenceFields(prefs), zap.Uint64(logger.FieldRequest, req))...)

	go func() {
		match, err := s.finder.Find(ctx, prefs)
		s.apply(req, match, err)
	}()

	return req
}

// apply stores the outcome of request req unless a newer request exists.
func (s *Session) apply(req uint64, match *interview.Match, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if req != s.state.Request {
		s.logger.Debug("discarding superseded lookup",
			zap.Uint64(logger.FieldRequest, req),
			zap.Uint64("latest_request", s.state.Request),
		)
		return false
	}

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	next := s.state
	next.UpdatedAt = time.Now().UTC()
	switch {
	case err != nil:
		next.Status = StatusFailed
		next.Error = err.Error()
		s.logger.Warn("lookup failed", zap.Uint64(logger.FieldRequest, req), zap.Error(err))
	case match == nil:
		next.Status = StatusNotFound
		s.logger.Info("no match found", zap.Uint64(logger.FieldRequest, req))
	default:
		match.Requester.ID = s.id
		next.Status = StatusFound
		next.Match = match
		s.logger.Info("match found",
			zap.Uint64(logger.FieldRequest, req),
			zap.String(logger.FieldCandidateID, match.Candidate.ID),
		)
	}

	s.state = next
	s.notifyLocked()
	return true
}

// Wait blocks until request req has resolved or was superseded and returns the latest state.
func (s *Session) Wait(ctx context.Context, req uint64) (State, error) {
	for {
		s.mu.Lock()
		state := s.state.clone()
		changed := s.changed
		s.mu.Unlock()

		if req > state.Request {
			return state, ErrUnknownRequest
		}
		if req < state.Request || state.Done() {
			return state, nil
		}

		select {
		case <-ctx.Done():
			return state, ctx.Err()
		case <-changed:
		}
	}
}

// Close cancels any in-flight lookup.
func (s *Session) Close() {
	s.stop()
}

func (s *Session) notifyLocked() {
	close(s.changed)
	s.changed = make(chan struct{})
}
