package trend

import (
	"sort"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

// DefaultTopN is the size of every dashboard ranking.
const DefaultTopN = 10

// TopN returns at most n items ordered by count descending. Items with
// equal counts keep their input order. The input slice is not modified.
func TopN[T any](items []T, n int, count func(T) int64) []T {
	sorted := make([]T, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool { return count(sorted[i]) > count(sorted[j]) })

	if n < 0 {
		n = 0
	}
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// TopTen is TopN with DefaultTopN.
func TopTen[T any](items []T, count func(T) int64) []T {
	return TopN(items, DefaultTopN, count)
}

// TopReceivingCountries ranks the outgoing report's receiving countries by
// total cases.
func TopReceivingCountries(countries []domain.OutgoingCountry) []domain.OutgoingCountry {
	return TopTen(countries, func(c domain.OutgoingCountry) int64 { return c.TotalCases })
}

// StateTotal is one U.S. state's outgoing cases summed over receiving countries.
type StateTotal struct {
	State      string `json:"state"`
	TotalCases int64  `json:"total_cases"`
}

// StateTotals regroups the per-country state breakdowns into one total per
// state of origin. States are listed in order of first appearance, walking
// countries in input order and each country's states alphabetically.
func StateTotals(countries []domain.OutgoingCountry) []StateTotal {
	var totals []StateTotal
	index := make(map[string]int)

	for _, c := range countries {
		states := make([]string, 0, len(c.USStates))
		for s := range c.USStates {
			states = append(states, s)
		}
		sort.Strings(states)

		for _, s := range states {
			if i, ok := index[s]; ok {
				totals[i].TotalCases += c.USStates[s]
				continue
			}
			index[s] = len(totals)
			totals = append(totals, StateTotal{State: s, TotalCases: c.USStates[s]})
		}
	}
	return totals
}

// TopStatesOfOrigin ranks U.S. states by outgoing cases across every
// receiving country.
func TopStatesOfOrigin(countries []domain.OutgoingCountry) []StateTotal {
	return TopTen(StateTotals(countries), func(s StateTotal) int64 { return s.TotalCases })
}
