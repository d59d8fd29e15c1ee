//go:build integration

package report_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/adoption-stats/internal/adapter/postgres/report"
	"github.com/heartmarshall/adoption-stats/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/adoption-stats/internal/domain"
)

func newRepo(t *testing.T) *report.Repo {
	t.Helper()
	return report.New(testhelper.SetupTestDB(t))
}

func totalsByName(rows []domain.IncomingRow) map[string]int64 {
	m := make(map[string]int64, len(rows))
	for _, r := range rows {
		m[r.Name] = r.TotalAdoptions
	}
	return m
}

func TestRepoIntegration_IncomingByCountry_AllYears(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	rows, err := repo.IncomingByCountry(context.Background(), domain.All())
	require.NoError(t, err)
	require.Len(t, rows, 3)

	require.Equal(t, "China", rows[0].Name)
	require.Equal(t, int64(180), rows[0].AdoptionsFinalizedAbroad)
	require.Equal(t, int64(90), rows[0].AdoptionsToBeFinalizedInUS)
	require.Equal(t, int64(270), rows[0].TotalAdoptions)
	require.Equal(t, map[string]int64{"China": 270, "Ukraine": 70, "Colombia": 10}, totalsByName(rows))
}

func TestRepoIntegration_IncomingByCountry_CrossYearConsistency(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	all, err := repo.IncomingByCountry(ctx, domain.All())
	require.NoError(t, err)

	summed := map[string]int64{}
	for _, year := range []int{2018, 2019} {
		rows, err := repo.IncomingByCountry(ctx, domain.Specific(year))
		require.NoError(t, err)
		for name, total := range totalsByName(rows) {
			summed[name] += total
		}
	}

	require.Equal(t, summed, totalsByName(all))
}

func TestRepoIntegration_IncomingByCountry_SpecificYearOrdering(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	rows, err := repo.IncomingByCountry(context.Background(), domain.Specific(2019))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	for i := 1; i < len(rows); i++ {
		require.GreaterOrEqual(t, rows[i-1].TotalAdoptions, rows[i].TotalAdoptions)
	}
}

func TestRepoIntegration_EmptyYears(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	// 2020 exists with no facts; 1999 is not a year.
	for _, year := range []int{2020, 1999} {
		rows, err := repo.IncomingByCountry(ctx, domain.Specific(year))
		require.NoError(t, err)
		require.Empty(t, rows)

		outgoing, err := repo.OutgoingByCountryAndState(ctx, domain.Specific(year))
		require.NoError(t, err)
		require.Empty(t, outgoing)
	}
}

func TestRepoIntegration_IncomingByState(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	rows, err := repo.IncomingByState(context.Background(), domain.All())
	require.NoError(t, err)
	require.Equal(t, map[string]int64{"Texas": 160, "Ohio": 65, "Florida": 50}, totalsByName(rows))
	require.Equal(t, "Texas", rows[0].Name)
}

func TestRepoIntegration_OutgoingGroupsDuplicatePairs(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	rows, err := repo.OutgoingByCountryAndState(context.Background(), domain.Specific(2019))
	require.NoError(t, err)
	require.Equal(t, []domain.OutgoingRow{
		{ReceivingCountry: "Canada", State: "Texas", TotalCases: 5},
		{ReceivingCountry: "Netherlands", State: "Ohio", TotalCases: 2},
	}, rows)
}

func TestRepoIntegration_OutgoingAllYearsOrdering(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	rows, err := repo.OutgoingByCountryAndState(context.Background(), domain.All())
	require.NoError(t, err)
	require.Equal(t, []domain.OutgoingRow{
		{ReceivingCountry: "Canada", State: "Texas", TotalCases: 8},
		{ReceivingCountry: "Canada", State: "Ohio", TotalCases: 1},
		{ReceivingCountry: "Ireland", State: "Florida", TotalCases: 2},
		{ReceivingCountry: "Netherlands", State: "Ohio", TotalCases: 2},
	}, rows)
}

func TestRepoIntegration_Dimensions(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	years, err := repo.Years(ctx)
	require.NoError(t, err)
	require.Equal(t, []int{2020, 2019, 2018}, years)

	states, err := repo.States(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"Florida", "Ohio", "Texas"}, states)

	countries, err := repo.Countries(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"China", "Colombia", "India", "Ukraine"}, countries)
}
