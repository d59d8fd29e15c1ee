// Package report implements the read-only adoption statistics queries
// over PostgreSQL. Every report is a single aggregation query; an empty
// result is returned as an empty slice and left for the caller to judge.
package report

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/adoption-stats/internal/adapter/postgres"
	"github.com/heartmarshall/adoption-stats/internal/domain"
)

// Repo provides adoption report queries backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new report repository. db is usually the process-wide
// *pgxpool.Pool; no particular connection is assumed across calls.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

// IncomingByCountry returns incoming adoptions per country of origin,
// ordered by total adoptions descending.
func (r *Repo) IncomingByCountry(ctx context.Context, sel domain.YearSelector) ([]domain.IncomingRow, error) {
	return r.incoming(ctx, incomingQuery(incomingByCountry, sel), "incoming by country "+sel.String())
}

// IncomingByState returns incoming adoptions per receiving U.S. state,
// ordered by total adoptions descending.
func (r *Repo) IncomingByState(ctx context.Context, sel domain.YearSelector) ([]domain.IncomingRow, error) {
	return r.incoming(ctx, incomingQuery(incomingByState, sel), "incoming by state "+sel.String())
}

// OutgoingByCountryAndState returns flat (receiving country, state, cases)
// rows ordered by receiving country, then cases descending.
func (r *Repo) OutgoingByCountryAndState(ctx context.Context, sel domain.YearSelector) ([]domain.OutgoingRow, error) {
	op := "outgoing by country and state " + sel.String()

	query, args, err := outgoingQuery(sel).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows := []domain.OutgoingRow{}
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, op)
	}

	return rows, nil
}

func (r *Repo) incoming(ctx context.Context, b sq.SelectBuilder, op string) ([]domain.IncomingRow, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: build query: %w", op, err)
	}

	rows := []domain.IncomingRow{}
	if err := pgxscan.Select(ctx, r.db, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, op)
	}

	return rows, nil
}

// ---------------------------------------------------------------------------
// Dimensions
// ---------------------------------------------------------------------------

// Years returns every fiscal year, most recent first.
func (r *Repo) Years(ctx context.Context) ([]int, error) {
	years := []int{}
	if err := pgxscan.Select(ctx, r.db, &years, listYearsSQL); err != nil {
		return nil, postgres.MapError(err, "list years")
	}
	return years, nil
}

// States returns every state name in alphabetical order.
func (r *Repo) States(ctx context.Context) ([]string, error) {
	states := []string{}
	if err := pgxscan.Select(ctx, r.db, &states, listStatesSQL); err != nil {
		return nil, postgres.MapError(err, "list states")
	}
	return states, nil
}

// Countries returns every country name in alphabetical order.
func (r *Repo) Countries(ctx context.Context) ([]string, error) {
	countries := []string{}
	if err := pgxscan.Select(ctx, r.db, &countries, listCountriesSQL); err != nil {
		return nil, postgres.MapError(err, "list countries")
	}
	return countries, nil
}
