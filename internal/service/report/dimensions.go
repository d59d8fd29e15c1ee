package report

import (
	"context"
	"fmt"
)

// Years returns every fiscal year, most recent first. An empty list is not an error.
func (s *Service) Years(ctx context.Context) ([]int, error) {
	years, err := s.reports.Years(ctx)
	if err != nil {
		return nil, fmt.Errorf("list years: %w", err)
	}
	return years, nil
}

// States returns every state name in alphabetical order.
func (s *Service) States(ctx context.Context) ([]string, error) {
	states, err := s.reports.States(ctx)
	if err != nil {
		return nil, fmt.Errorf("list states: %w", err)
	}
	return states, nil
}

// Countries returns every country name in alphabetical order.
func (s *Service) Countries(ctx context.Context) ([]string, error) {
	countries, err := s.reports.Countries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list countries: %w", err)
	}
	return countries, nil
}
