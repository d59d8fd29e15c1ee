// Package report answers the adoption statistics reports: it dispatches the
// year selector to the repository, turns empty results into
// domain.ErrNotFound and shapes flat rows into report envelopes.
package report

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

type reportRepo interface {
	IncomingByCountry(ctx context.Context, sel domain.YearSelector) ([]domain.IncomingRow, error)
	IncomingByState(ctx context.Context, sel domain.YearSelector) ([]domain.IncomingRow, error)
	OutgoingByCountryAndState(ctx context.Context, sel domain.YearSelector) ([]domain.OutgoingRow, error)

	Years(ctx context.Context) ([]int, error)
	States(ctx context.Context) ([]string, error)
	Countries(ctx context.Context) ([]string, error)
}

// Service provides the read-only adoption reports.
type Service struct {
	reports reportRepo
	log     *slog.Logger
}

// NewService creates a new report Service.
func NewService(log *slog.Logger, reports reportRepo) *Service {
	return &Service{
		reports: reports,
		log:     log.With("service", "report"),
	}
}
