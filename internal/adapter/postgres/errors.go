package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

// MapError converts pgx/pgconn errors into wrapped errors tagged with the
// failing operation. pgx.ErrNoRows becomes domain.ErrNotFound; everything
// else is a storage error the transport layer answers with 500.
// context.DeadlineExceeded and context.Canceled pass through unchanged.
func MapError(err error, op string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("%s: sqlstate %s: %w", op, pgErr.Code, err)
	}

	return fmt.Errorf("%s: %w", op, err)
}
