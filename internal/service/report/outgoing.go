package report

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

// OutgoingByCountryAndState returns outgoing adoptions grouped by receiving
// country with a per-state breakdown. Returns domain.ErrNotFound when there
// are no rows.
func (s *Service) OutgoingByCountryAndState(ctx context.Context, sel domain.YearSelector) (domain.OutgoingReport, error) {
	rows, err := s.reports.OutgoingByCountryAndState(ctx, sel)
	if err != nil {
		return domain.OutgoingReport{}, fmt.Errorf("outgoing by country and state: %w", err)
	}
	if len(rows) == 0 {
		return domain.OutgoingReport{}, fmt.Errorf("outgoing %s: %w", sel, domain.ErrNotFound)
	}

	countries := FoldOutgoing(rows)
	r := domain.OutgoingReport{
		Selector:   sel,
		Countries:  countries,
		TotalCases: SumTotalCases(countries),
	}

	s.log.DebugContext(ctx, "report built",
		slog.String("report", "outgoing"),
		slog.String("year", sel.String()),
		slog.Int("countries", len(countries)),
		slog.Int64("total_cases", r.TotalCases),
	)

	return r, nil
}
