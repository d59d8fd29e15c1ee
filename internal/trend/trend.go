// Package trend turns per-year adoption reports into chart series: yearly
// totals with year-over-year percent change, and top-N rankings.
package trend

import (
	"sort"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

// Labels that select the sum over every row of a year instead of one entity.
const (
	AllCountries = "All Countries"
	AllStates    = "All States"
)

// YearResult is one fiscal year's incoming report rows.
type YearResult struct {
	Year int
	Rows []domain.IncomingRow
}

// Point is one year of a trend series. PercentChange is nil for the first
// year and whenever the previous year's value is zero.
type Point struct {
	Year          int      `json:"year"`
	Adoptions     int64    `json:"adoptions"`
	PercentChange *float64 `json:"percentChange"`
}

// Series builds the yearly trend for selected. When selected equals
// allLabel the year's value is the sum over all rows; otherwise it is the
// total of the row named selected, or 0 if the entity has no row that year.
// Points are ordered by ascending year.
func Series(results []YearResult, selected, allLabel string) []Point {
	sorted := make([]YearResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Year < sorted[j].Year })

	values := make([]int64, len(sorted))
	for i, r := range sorted {
		values[i] = yearValue(r.Rows, selected, allLabel)
	}
	changes := PercentChanges(values)

	points := make([]Point, len(sorted))
	for i, r := range sorted {
		points[i] = Point{Year: r.Year, Adoptions: values[i], PercentChange: changes[i]}
	}
	return points
}

func yearValue(rows []domain.IncomingRow, selected, allLabel string) int64 {
	if selected == allLabel {
		var sum int64
		for _, row := range rows {
			sum += row.TotalAdoptions
		}
		return sum
	}
	for _, row := range rows {
		if row.Name == selected {
			return row.TotalAdoptions
		}
	}
	return 0
}

// PercentChanges returns (cur-prev)/prev*100 for each value against its
// predecessor. The first entry, and any entry whose predecessor is 0, is nil.
func PercentChanges(values []int64) []*float64 {
	out := make([]*float64, len(values))
	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			continue
		}
		pct := float64(values[i]-prev) / float64(prev) * 100
		out[i] = &pct
	}
	return out
}
