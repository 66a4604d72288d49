package matching

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/candidates"
	"github.com/spigell/peer-interview/internal/filtering"
	"github.com/spigell/peer-interview/internal/interview"
	"github.com/spigell/peer-interview/internal/logger"
	"github.com/spigell/peer-interview/internal/utils"
)

// DefaultDelay is the simulated lookup latency.
const DefaultDelay = time.Second

type Config struct {
	Delay       time.Duration `mapstructure:"delay"`
	ExcludeFile string        `mapstructure:"exclude-file"`
}

// Service looks up a peer for the given preferences.
type Service struct {
	repo   candidates.Repository
	steps  []filtering.Filter
	delay  time.Duration
	logger *zap.Logger
}

// New creates a Service. A nil config uses DefaultDelay and no exclude file.
func New(repo candidates.Repository, cfg *Config, log *zap.Logger) *Service {
	delay := DefaultDelay
	excludeFile := ""
	if cfg != nil {
		delay = cfg.Delay
		excludeFile = cfg.ExcludeFile
	}
	if delay < 0 {
		delay = 0
	}

	return &Service{
		repo:   repo,
		steps:  filtering.Default(excludeFile),
		delay:  delay,
		logger: logger.WithFields(log),
	}
}

// Find returns the first candidate matching prefs in pool order.
// A nil match with a nil error means nobody matched.
func (s *Service) Find(ctx context.Context, prefs interview.Preferences) (*interview.Match, error) {
	log := s.logger.With(logger.PreferenceFields(prefs)...)

	if err := utils.WaitFor(ctx, s.delay); err != nil {
		return nil, err
	}

	pool, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing candidates: %w", err)
	}

	left, err := filtering.Run(ctx, log, s.steps, prefs, pool)
	if err != nil {
		return nil, fmt.Errorf("filtering candidates: %w", err)
	}

	if left.Len() == 0 {
		log.Debug("no match found", zap.Int("pool", pool.Len()))
		return nil, nil
	}

	match := interview.NewMatch(interview.CurrentUserID, prefs, left.Items[0])
	log.Debug("match found", zap.String(logger.FieldCandidateID, match.Candidate.ID))

	return match, nil
}

// Candidates returns the pool the service matches against.
func (s *Service) Candidates(ctx context.Context) (*interview.Candidates, error) {
	return s.repo.List(ctx)
}

// Filters reports the pipeline configuration.
func (s *Service) Filters() []filtering.Status {
	return filtering.Describe(s.steps)
}
