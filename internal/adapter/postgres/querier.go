package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Querier is the read surface shared by *pgxpool.Pool, pgx.Tx and
// pgxmock pools. It is also what pgxscan needs to scan result sets.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
