package report

import (
	"sort"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

// SumTotalAdoptions returns the sum of every row's total, the redundant
// envelope field clients use instead of re-summing.
func SumTotalAdoptions(rows []domain.IncomingRow) int64 {
	var total int64
	for _, r := range rows {
		total += r.TotalAdoptions
	}
	return total
}

// FoldOutgoing groups flat (receiving country, state, cases) rows into one
// record per receiving country. TotalCases is the sum of every row for the
// country; a state that appears twice keeps the last value in USStates.
// The result is ordered by receiving country regardless of input order.
func FoldOutgoing(rows []domain.OutgoingRow) []domain.OutgoingCountry {
	byCountry := make(map[string]*domain.OutgoingCountry)
	for _, r := range rows {
		c, ok := byCountry[r.ReceivingCountry]
		if !ok {
			c = &domain.OutgoingCountry{
				ReceivingCountry: r.ReceivingCountry,
				USStates:         make(map[string]int64),
			}
			byCountry[r.ReceivingCountry] = c
		}
		c.TotalCases += r.TotalCases
		c.USStates[r.State] = r.TotalCases
	}

	countries := make([]domain.OutgoingCountry, 0, len(byCountry))
	for _, c := range byCountry {
		countries = append(countries, *c)
	}
	sort.Slice(countries, func(i, j int) bool {
		return countries[i].ReceivingCountry < countries[j].ReceivingCountry
	})

	return countries
}

// SumTotalCases returns the grand total across receiving countries.
func SumTotalCases(countries []domain.OutgoingCountry) int64 {
	var total int64
	for _, c := range countries {
		total += c.TotalCases
	}
	return total
}
