package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

// IncomingByCountry returns incoming adoptions per country of origin for
// the selected year scope. Returns domain.ErrNotFound when there are no rows.
func (s *Service) IncomingByCountry(ctx context.Context, sel domain.YearSelector) (domain.IncomingReport, error) {
	rows, err := s.reports.IncomingByCountry(ctx, sel)
	if err != nil {
		return domain.IncomingReport{}, fmt.Errorf("incoming by country: %w", err)
	}
	return s.incomingReport(ctx, "incoming_by_country", sel, rows)
}

// IncomingByState returns incoming adoptions per receiving U.S. state for
// the selected year scope. Returns domain.ErrNotFound when there are no rows.
func (s *Service) IncomingByState(ctx context.Context, sel domain.YearSelector) (domain.IncomingReport, error) {
	rows, err := s.reports.IncomingByState(ctx, sel)
	if err != nil {
		return domain.IncomingReport{}, fmt.Errorf("incoming by state: %w", err)
	}
	return s.incomingReport(ctx, "incoming_by_state", sel, rows)
}

func (s *Service) incomingReport(ctx context.Context, name string, sel domain.YearSelector, rows []domain.IncomingRow) (domain.IncomingReport, error) {
	if len(rows) == 0 {
		return domain.IncomingReport{}, fmt.Errorf("%s %s: %w", name, sel, domain.ErrNotFound)
	}

	r := domain.IncomingReport{
		Selector:       sel,
		Rows:           rows,
		TotalAdoptions: SumTotalAdoptions(rows),
	}

	s.log.DebugContext(ctx, "report built",
		slog.String("report", name),
		slog.String("year", sel.String()),
		slog.Int("rows", len(rows)),
		slog.Int64("total_adoptions", r.TotalAdoptions),
	)

	return r, nil
}
