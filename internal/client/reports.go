package client

import (
	"context"
	"fmt"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

type listEnvelope[T any] struct {
	Year string `json:"year"`
	Data []T    `json:"data"`
}

type incomingEntry struct {
	Country                    string `json:"country"`
	State                      string `json:"state"`
	AdoptionsFinalizedAbroad   int64  `json:"adoptions_finalized_abroad"`
	AdoptionsToBeFinalizedInUS int64  `json:"adoptions_to_be_finalized_in_us"`
	TotalAdoptions             int64  `json:"total_adoptions"`
}

type incomingEnvelope struct {
	Year           string          `json:"year"`
	Data           []incomingEntry `json:"data"`
	TotalAdoptions int64           `json:"total_adoptions"`
}

type outgoingEntry struct {
	ReceivingCountry string           `json:"receiving_country"`
	TotalCases       int64            `json:"total_cases"`
	USStates         map[string]int64 `json:"us_states"`
}

type outgoingEnvelope struct {
	Year       string          `json:"year"`
	Data       []outgoingEntry `json:"data"`
	TotalCases int64           `json:"total_cases"`
}

// Years returns every fiscal year known to the API, most recent first.
func (c *Client) Years(ctx context.Context) ([]int, error) {
	var env listEnvelope[int]
	if err := c.getJSON(ctx, "/api/years", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// States returns every U.S. state name in alphabetical order.
func (c *Client) States(ctx context.Context) ([]string, error) {
	var env listEnvelope[string]
	if err := c.getJSON(ctx, "/api/states", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// Countries returns every country of origin in alphabetical order.
func (c *Client) Countries(ctx context.Context) ([]string, error) {
	var env listEnvelope[string]
	if err := c.getJSON(ctx, "/api/countries", &env); err != nil {
		return nil, err
	}
	return env.Data, nil
}

// IncomingAdoptions fetches incoming adoptions by country of origin.
func (c *Client) IncomingAdoptions(ctx context.Context, sel domain.YearSelector) (domain.IncomingReport, error) {
	var env incomingEnvelope
	if err := c.getJSON(ctx, yearPath("/api/incoming-adoptions", sel), &env); err != nil {
		return domain.IncomingReport{}, err
	}
	return env.toReport(func(e incomingEntry) string { return e.Country })
}

// IncomingAdoptionsByState fetches incoming adoptions by receiving state.
func (c *Client) IncomingAdoptionsByState(ctx context.Context, sel domain.YearSelector) (domain.IncomingReport, error) {
	var env incomingEnvelope
	if err := c.getJSON(ctx, yearPath("/api/incoming-adoptions-by-state", sel), &env); err != nil {
		return domain.IncomingReport{}, err
	}
	return env.toReport(func(e incomingEntry) string { return e.State })
}

// OutgoingAdoptions fetches outgoing adoptions grouped by receiving country.
func (c *Client) OutgoingAdoptions(ctx context.Context, sel domain.YearSelector) (domain.OutgoingReport, error) {
	var env outgoingEnvelope
	if err := c.getJSON(ctx, yearPath("/api/outgoing-adoptions", sel), &env); err != nil {
		return domain.OutgoingReport{}, err
	}

	parsed, err := domain.ParseYearSelector(env.Year)
	if err != nil {
		return domain.OutgoingReport{}, fmt.Errorf("stats api: response year %q: %w", env.Year, err)
	}

	countries := make([]domain.OutgoingCountry, 0, len(env.Data))
	for _, e := range env.Data {
		states := e.USStates
		if states == nil {
			states = map[string]int64{}
		}
		countries = append(countries, domain.OutgoingCountry{
			ReceivingCountry: e.ReceivingCountry,
			TotalCases:       e.TotalCases,
			USStates:         states,
		})
	}

	return domain.OutgoingReport{
		Selector:   parsed,
		Countries:  countries,
		TotalCases: env.TotalCases,
	}, nil
}

func (env incomingEnvelope) toReport(name func(incomingEntry) string) (domain.IncomingReport, error) {
	parsed, err := domain.ParseYearSelector(env.Year)
	if err != nil {
		return domain.IncomingReport{}, fmt.Errorf("stats api: response year %q: %w", env.Year, err)
	}

	rows := make([]domain.IncomingRow, 0, len(env.Data))
	for _, e := range env.Data {
		rows = append(rows, domain.IncomingRow{
			Name:                       name(e),
			AdoptionsFinalizedAbroad:   e.AdoptionsFinalizedAbroad,
			AdoptionsToBeFinalizedInUS: e.AdoptionsToBeFinalizedInUS,
			TotalAdoptions:             e.TotalAdoptions,
		})
	}

	return domain.IncomingReport{
		Selector:       parsed,
		Rows:           rows,
		TotalAdoptions: env.TotalAdoptions,
	}, nil
}
