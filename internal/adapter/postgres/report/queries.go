package report

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/adoption-stats/internal/domain"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// incomingSource describes an incoming-adoptions fact table and the
// dimension it is keyed by.
type incomingSource struct {
	fact     string
	alias    string
	dimTable string
	dimAlias string
	dimKey   string // join column shared by fact and dimension
	dimName  string // qualified dimension name column
}

var incomingByCountry = incomingSource{
	fact:     "incoming_adoptions",
	alias:    "ia",
	dimTable: "countries",
	dimAlias: "c",
	dimKey:   "country_id",
	dimName:  "c.country_name",
}

var incomingByState = incomingSource{
	fact:     "incoming_adoptions_by_state",
	alias:    "iabs",
	dimTable: "states",
	dimAlias: "s",
	dimKey:   "state_id",
	dimName:  "s.state_name",
}

var incomingMetrics = []string{
	"adoptions_finalized_abroad",
	"adoptions_to_be_finalized_in_us",
	"total_adoptions",
}

// incomingQuery builds the incoming report query for the given selector.
// All sums every metric per dimension value; a specific year reads that
// year's rows directly since there is one row per dimension value per year.
// Equal totals keep whatever order the planner produces.
func incomingQuery(src incomingSource, sel domain.YearSelector) sq.SelectBuilder {
	q := psql.
		Select(src.dimName + " AS name").
		From(src.fact + " " + src.alias).
		Join(fmt.Sprintf("%s %s ON %s.%s = %s.%s",
			src.dimTable, src.dimAlias, src.alias, src.dimKey, src.dimAlias, src.dimKey))

	year, specific := sel.Year()
	if !specific {
		for _, m := range incomingMetrics {
			q = q.Column(fmt.Sprintf("SUM(%s.%s) AS %s", src.alias, m, m))
		}
		return q.
			GroupBy(src.dimName).
			OrderBy(fmt.Sprintf("SUM(%s.total_adoptions) DESC", src.alias))
	}

	for _, m := range incomingMetrics {
		q = q.Column(fmt.Sprintf("%s.%s", src.alias, m))
	}
	return q.
		Join(fmt.Sprintf("years y ON %s.year_id = y.year_id", src.alias)).
		Where(sq.Eq{"y.year": year}).
		OrderBy(src.alias + ".total_adoptions DESC")
}

// outgoingQuery builds the outgoing report query. Rows are grouped by
// (receiving_country, state) for every selector since a year may carry
// several rows for the same pair.
func outgoingQuery(sel domain.YearSelector) sq.SelectBuilder {
	q := psql.
		Select(
			"oa.receiving_country",
			"s.state_name AS us_state",
			"SUM(oa.number_of_cases) AS total_cases",
		).
		From("outgoing_adoptions oa").
		Join("states s ON oa.state_id = s.state_id")

	if year, ok := sel.Year(); ok {
		q = q.
			Join("years y ON oa.year_id = y.year_id").
			Where(sq.Eq{"y.year": year})
	}

	return q.
		GroupBy("oa.receiving_country", "s.state_name").
		OrderBy("oa.receiving_country", "SUM(oa.number_of_cases) DESC")
}

const (
	listYearsSQL     = `SELECT year FROM years ORDER BY year DESC`
	listStatesSQL    = `SELECT state_name FROM states ORDER BY state_name`
	listCountriesSQL = `SELECT country_name FROM countries ORDER BY country_name`
)
