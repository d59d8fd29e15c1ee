package client

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/adoption-stats/internal/domain"
	"github.com/heartmarshall/adoption-stats/internal/trend"
)

type incomingFetch func(ctx context.Context, sel domain.YearSelector) (domain.IncomingReport, error)

// IncomingTrendInputs fetches the by-country report of every year known to
// the API. Any failing year fails the whole batch.
func (c *Client) IncomingTrendInputs(ctx context.Context) ([]trend.YearResult, error) {
	return c.perYear(ctx, "incoming", c.IncomingAdoptions)
}

// StateTrendInputs fetches the by-state report of every year known to the
// API. Any failing year fails the whole batch.
func (c *Client) StateTrendInputs(ctx context.Context) ([]trend.YearResult, error) {
	return c.perYear(ctx, "incoming by state", c.IncomingAdoptionsByState)
}

// perYear lists the years, then issues one request per year concurrently
// and waits for all of them. The first error cancels the remaining requests.
func (c *Client) perYear(ctx context.Context, name string, fetch incomingFetch) ([]trend.YearResult, error) {
	years, err := c.Years(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s batch: list years: %w", name, err)
	}

	results := make([]trend.YearResult, len(years))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)

	for i, year := range years {
		g.Go(func() error {
			report, err := fetch(gctx, domain.Specific(year))
			if err != nil {
				return fmt.Errorf("%s batch: year %d: %w", name, year, err)
			}
			results[i] = trend.YearResult{Year: year, Rows: report.Rows}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
