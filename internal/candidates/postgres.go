package candidates

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/spigell/peer-interview/internal/interview"
)

const listQuery = `SELECT id, job_target, timezone, availability FROM candidates ORDER BY position, id`

// Postgres reads the pool from the candidates table.
type Postgres struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgres(ctx context.Context, dsn string, logger *zap.Logger) (*Postgres, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("creating postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	return &Postgres{pool: pool, logger: logger}, nil
}

func (p *Postgres) List(ctx context.Context) (*interview.Candidates, error) {
	rows, err := p.pool.Query(ctx, listQuery)
	if err != nil {
		return nil, fmt.Errorf("querying candidates: %w", err)
	}
	defer rows.Close()

	pool := &interview.Candidates{}
	for rows.Next() {
		var c interview.Candidate
		if err := rows.Scan(&c.ID, &c.JobTarget, &c.Timezone, &c.Availability); err != nil {
			return nil, fmt.Errorf("scanning candidate: %w", err)
		}
		pool.Items = append(pool.Items, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading candidates: %w", err)
	}

	p.logger.Debug("candidates loaded from postgres", zap.Int("count", pool.Len()))
	return pool, nil
}

func (p *Postgres) Close() {
	if p == nil || p.pool == nil {
		return
	}
	p.pool.Close()
}
