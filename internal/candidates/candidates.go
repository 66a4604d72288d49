package candidates

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/interview"
	"github.com/spigell/peer-interview/internal/secrets"
)

const (
	SourceFixture  = "fixture"
	SourceFile     = "file"
	SourcePostgres = "postgres"

	dsnEnvFile = "PEER_INTERVIEW_DSN_FILE"
)

var ErrUnknownSource = errors.New("unknown candidates source")

// Repository supplies the ordered candidate pool.
type Repository interface {
	List(ctx context.Context) (*interview.Candidates, error)
	Close()
}

type Config struct {
	Source   string          `mapstructure:"source"`
	File     string          `mapstructure:"file"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type PostgresConfig struct {
	DSN     string `mapstructure:"dsn" json:"-"`
	DSNFile string `mapstructure:"dsn-file"`
}

// New builds the repository selected by cfg. A nil config selects the built-in fixture.
func New(ctx context.Context, cfg *Config, logger *zap.Logger) (Repository, error) {
	if cfg == nil {
		cfg = &Config{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	source := strings.ToLower(strings.TrimSpace(cfg.Source))
	switch source {
	case "", SourceFixture:
		return NewStatic(interview.DefaultCandidates()), nil
	case SourceFile:
		path := strings.TrimSpace(cfg.File)
		if path == "" {
			return nil, fmt.Errorf("candidates.file is required for the %s source", SourceFile)
		}
		pool, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		logger.Debug("candidates loaded from file", zap.String("path", path), zap.Int("count", pool.Len()))
		return NewStatic(pool), nil
	case SourcePostgres:
		pgCfg := cfg.Postgres
		if pgCfg == nil {
			pgCfg = &PostgresConfig{}
		}
		dsn, err := secrets.Load(secrets.Source{
			Name:    "postgres dsn",
			Value:   pgCfg.DSN,
			File:    pgCfg.DSNFile,
			EnvFile: dsnEnvFile,
		})
		if err != nil {
			return nil, err
		}
		return NewPostgres(ctx, dsn, logger)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownSource, cfg.Source)
	}
}

// Static serves a fixed in-memory pool.
type Static struct {
	pool *interview.Candidates
}

func NewStatic(pool *interview.Candidates) *Static {
	if pool == nil {
		pool = &interview.Candidates{}
	}
	return &Static{pool: pool.Clone()}
}

// List returns a copy so callers may filter it freely.
func (s *Static) List(ctx context.Context) (*interview.Candidates, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.pool.Clone(), nil
}

func (s *Static) Close() {}
