package session

import (
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/logger"
)

const (
	DefaultMaxSessions = 1000
	DefaultIdleTTL     = 30 * time.Minute
)

var (
	ErrNotFound        = errors.New("session not found")
	ErrTooManySessions = errors.New("too many open sessions")
)

type StoreConfig struct {
	MaxSessions int           `mapstructure:"max"`
	IdleTTL     time.Duration `mapstructure:"idle-ttl"`
}

type entry struct {
	session *Session
	seen    time.Time
}

// Store keeps sessions by id. Sessions untouched for longer than the idle TTL
// are closed and dropped when a new session is created.
type Store struct {
	finder Finder
	logger *zap.Logger
	cfg    StoreConfig
	now    func() time.Time

	mu       sync.RWMutex
	sessions map[string]*entry
}

func NewStore(finder Finder, cfg *StoreConfig, log *zap.Logger) *Store {
	c := StoreConfig{}
	if cfg != nil {
		c = *cfg
	}
	if c.MaxSessions <= 0 {
		c.MaxSessions = DefaultMaxSessions
	}
	if c.IdleTTL <= 0 {
		c.IdleTTL = DefaultIdleTTL
	}

	return &Store{
		finder:   finder,
		logger:   logger.WithFields(log),
		cfg:      c,
		now:      time.Now,
		sessions: make(map[string]*entry),
	}
}

func (s *Store) Create() (*Session, error) {
	s.mu.Lock()
	expired := s.expireLocked()
	if len(s.sessions) >= s.cfg.MaxSessions {
		s.mu.Unlock()
		closeAll(expired)
		s.logger.Warn("session limit reached", zap.Int("max", s.cfg.MaxSessions))
		return nil, ErrTooManySessions
	}

	sess := New(s.finder, s.logger)
	s.sessions[sess.ID()] = &entry{session: sess, seen: s.now()}
	s.mu.Unlock()

	closeAll(expired)
	s.logger.Debug("session created", zap.String(logger.FieldSessionID, sess.ID()))
	return sess, nil
}

// Get returns the session and marks it as used.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	e.seen = s.now()
	return e.session, nil
}

func (s *Store) Delete(id string) error {
	s.mu.Lock()
	e, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if !ok {
		return ErrNotFound
	}

	e.session.Close()
	s.logger.Debug("session deleted", zap.String(logger.FieldSessionID, id))
	return nil
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// Close cancels the lookups of every session and forgets them.
func (s *Store) Close() {
	s.mu.Lock()
	sessions := make([]*Session, 0, len(s.sessions))
	for _, e := range s.sessions {
		sessions = append(sessions, e.session)
	}
	s.sessions = make(map[string]*entry)
	s.mu.Unlock()

	closeAll(sessions)
}

func (s *Store) expireLocked() []*Session {
	deadline := s.now().Add(-s.cfg.IdleTTL)

	var expired []*Session
	for id, e := range s.sessions {
		if e.seen.Before(deadline) {
			delete(s.sessions, id)
			expired = append(expired, e.session)
			s.logger.Debug("session expired", zap.String(logger.FieldSessionID, id))
		}
	}
	return expired
}

func closeAll(sessions []*Session) {
	for _, sess := range sessions {
		sess.Close()
	}
}
