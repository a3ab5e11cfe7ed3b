package health

import (
	"context"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connectivity.
type PostgresChecker struct {
	db Pinger
}

func NewPostgresChecker(db Pinger) *PostgresChecker {
	return &PostgresChecker{db: db}
}

func (c *PostgresChecker) Name() string {
	return "postgres"
}

// Check pings the database. The payment store is required, so any error marks the service down.
func (c *PostgresChecker) Check(ctx context.Context) Result {
	if err := c.db.Ping(ctx); err != nil {
		return Result{Status: StatusDown, Message: err.Error()}
	}
	return Result{Status: StatusUp}
}
