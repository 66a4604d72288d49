package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/interview"
	"github.com/spigell/peer-interview/internal/logger"
	"github.com/spigell/peer-interview/internal/session"
)

const (
	defaultListen          = ":8080"
	defaultShutdownTimeout = 10 * time.Second
)

// Matcher is what the API needs from the matching service.
type Matcher interface {
	Find(ctx context.Context, prefs interview.Preferences) (*interview.Match, error)
	Candidates(ctx context.Context) (*interview.Candidates, error)
}

type Config struct {
	Listen          string        `mapstructure:"listen"`
	AllowedOrigins  []string      `mapstructure:"allowed-origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown-timeout"`

	Sessions *session.StoreConfig `mapstructure:"sessions"`
}

type Server struct {
	matcher  Matcher
	sessions *session.Store
	cfg      Config
	logger   *zap.Logger
}

func New(matcher Matcher, sessions *session.Store, cfg *Config, log *zap.Logger) *Server {
	c := Config{}
	if cfg != nil {
		c = *cfg
	}
	if c.Listen == "" {
		c.Listen = defaultListen
	}
	if c.ShutdownTimeout <= 0 {
		c.ShutdownTimeout = defaultShutdownTimeout
	}
	if len(c.AllowedOrigins) == 0 {
		c.AllowedOrigins = []string{"*"}
	}

	return &Server{
		matcher:  matcher,
		sessions: sessions,
		cfg:      c,
		logger:   logger.WithFields(log),
	}
}

// Handler returns the API router wrapped with CORS and access logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	r.Use(s.accessLog)

	r.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/options", s.handleOptions).Methods(http.MethodGet)
	api.HandleFunc("/candidates", s.handleCandidates).Methods(http.MethodGet)
	api.HandleFunc("/match", s.handleMatch).Methods(http.MethodPost)

	api.HandleFunc("/sessions", s.handleCreateSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", s.handleGetSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", s.handleDeleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/preferences", s.handleSubmitPreferences).Methods(http.MethodPut)

	return cors.New(cors.Options{
		AllowedOrigins: s.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(r)
}

// Run serves the API until ctx is cancelled and then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Listen,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting the api server", zap.String("listen", s.cfg.Listen))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving api: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down the api server", zap.Duration("timeout", s.cfg.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down api: %w", err)
	}
	return nil
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Debug("http access",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("latency", time.Since(start)),
		)
	})
}
