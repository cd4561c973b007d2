package telemetry

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lucsky/cuid"
)

// PostgresSink inserts each web-vital event into the web_vitals table.
type PostgresSink struct {
	pool *pgxpool.Pool
}

func NewPostgresSink(ctx context.Context, url string) (*PostgresSink, error) {
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error pinging database: %w", err)
	}
	return &PostgresSink{pool: pool}, nil
}

func (s *PostgresSink) Record(ctx context.Context, vital WebVital) error {
	query := `
        INSERT INTO web_vitals (
            event_id, name, value, rating, delta, metric_id, page,
            user_agent, received_at
        ) VALUES (
            $1, $2, $3, $4, $5, $6, $7, $8, now()
        )
    `
	_, err := s.pool.Exec(ctx, query,
		cuid.New(),
		vital.Name,
		vital.Value,
		vital.Rating,
		vital.Delta,
		vital.MetricID,
		vital.Page,
		vital.UserAgent,
	)
	if err != nil {
		return fmt.Errorf("failed to insert web vital: %w", err)
	}
	return nil
}

func (s *PostgresSink) Close() {
	s.pool.Close()
}
