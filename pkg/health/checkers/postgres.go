package checkers

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresChecker struct {
	pool *pgxpool.Pool
}

func NewPostgresChecker(pool *pgxpool.Pool) *PostgresChecker {
	return &PostgresChecker{pool: pool}
}

func (c *PostgresChecker) Name() string { return "postgres" }

// Check pings the pool under the caller's deadline (the HTTP handlers bound
// every probe to one second).
func (c *PostgresChecker) Check(ctx context.Context) error {
	return c.pool.Ping(ctx)
}
