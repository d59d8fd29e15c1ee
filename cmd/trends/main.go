// Command trends prints the dashboard's trend and ranking panels from a
// running statistics API: yearly incoming adoptions for one country and
// one state with percent change, and the top-10 receiving countries and
// U.S. states of origin of the outgoing report.
//
// Flags:
//
//	--api        API base URL (default http://localhost:3000)
//	--country    country of origin, or "All Countries"
//	--state      receiving U.S. state, or "All States"
//	--year       outgoing report year or "all"
//	--format     text or json
//
// Exit codes: 0 = success, 1 = a panel has no data.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"
	"sync"
	"time"

	"github.com/heartmarshall/adoption-stats/internal/app"
	"github.com/heartmarshall/adoption-stats/internal/client"
	"github.com/heartmarshall/adoption-stats/internal/config"
	"github.com/heartmarshall/adoption-stats/internal/dashboard"
	"github.com/heartmarshall/adoption-stats/internal/domain"
	"github.com/heartmarshall/adoption-stats/internal/trend"
)

type panels struct {
	country  *dashboard.Panel[[]trend.Point]
	state    *dashboard.Panel[[]trend.Point]
	outgoing *dashboard.Panel[domain.OutgoingReport]
}

type output struct {
	Country               string                   `json:"country"`
	CountryTrend          []trend.Point            `json:"countryTrend"`
	State                 string                   `json:"state"`
	StateTrend            []trend.Point            `json:"stateTrend"`
	Year                  string                   `json:"year"`
	TotalCases            int64                    `json:"totalCases"`
	TopReceivingCountries []receivingCountryOutput `json:"topReceivingCountries"`
	TopStatesOfOrigin     []trend.StateTotal       `json:"topStatesOfOrigin"`
	Errors                []string                 `json:"errors,omitempty"`
}

type receivingCountryOutput struct {
	ReceivingCountry string `json:"receiving_country"`
	TotalCases       int64  `json:"total_cases"`
}

func main() {
	apiFlag := flag.String("api", "http://localhost:3000", "statistics API base URL")
	countryFlag := flag.String("country", trend.AllCountries, "country of origin")
	stateFlag := flag.String("state", trend.AllStates, "receiving U.S. state")
	yearFlag := flag.String("year", domain.AllYears, `outgoing report year or "all"`)
	formatFlag := flag.String("format", "text", "output format: text or json")
	timeoutFlag := flag.Duration("timeout", 30*time.Second, "overall timeout")
	logLevelFlag := flag.String("log-level", "warn", "log level")
	flag.Parse()

	logger := app.NewLogger(config.LogConfig{Level: *logLevelFlag, Format: "text"})

	sel, err := domain.ParseYearSelector(*yearFlag)
	if err != nil {
		log.Fatalf("--year: %v", err)
	}
	if *formatFlag != "text" && *formatFlag != "json" {
		log.Fatalf("--format must be text or json (got %q)", *formatFlag)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeoutFlag)
	defer cancel()

	api := client.New(*apiFlag, logger)
	p := panels{
		country:  dashboard.NewPanel[[]trend.Point]("country_trend", logger),
		state:    dashboard.NewPanel[[]trend.Point]("state_trend", logger),
		outgoing: dashboard.NewPanel[domain.OutgoingReport]("outgoing", logger),
	}

	refresh(ctx, api, p, *countryFlag, *stateFlag, sel)

	out := collect(p, *countryFlag, *stateFlag, sel)

	if *formatFlag == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(out); err != nil {
			log.Fatalf("encode: %v", err)
		}
	} else {
		render(os.Stdout, out)
	}

	if len(out.Errors) > 0 {
		os.Exit(1)
	}
}

// refresh loads every panel concurrently. Panels fail independently: a
// failure is recorded on the panel and surfaces through its Snapshot.
func refresh(ctx context.Context, api *client.Client, p panels, country, state string, sel domain.YearSelector) {
	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		p.country.Refresh(ctx, func(ctx context.Context) ([]trend.Point, error) {
			results, err := api.IncomingTrendInputs(ctx)
			if err != nil {
				return nil, err
			}
			return trend.Series(results, country, trend.AllCountries), nil
		})
	}()
	go func() {
		defer wg.Done()
		p.state.Refresh(ctx, func(ctx context.Context) ([]trend.Point, error) {
			results, err := api.StateTrendInputs(ctx)
			if err != nil {
				return nil, err
			}
			return trend.Series(results, state, trend.AllStates), nil
		})
	}()
	go func() {
		defer wg.Done()
		p.outgoing.Refresh(ctx, func(ctx context.Context) (domain.OutgoingReport, error) {
			return api.OutgoingAdoptions(ctx, sel)
		})
	}()
	wg.Wait()
}

func collect(p panels, country, state string, sel domain.YearSelector) output {
	out := output{Country: country, State: state, Year: sel.String()}

	if s := p.country.Snapshot(); s.HasData {
		out.CountryTrend = s.Data
	} else if s.Err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", p.country.Name(), s.Err))
	}

	if s := p.state.Snapshot(); s.HasData {
		out.StateTrend = s.Data
	} else if s.Err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", p.state.Name(), s.Err))
	}

	if s := p.outgoing.Snapshot(); s.HasData {
		out.TotalCases = s.Data.TotalCases
		for _, c := range trend.TopReceivingCountries(s.Data.Countries) {
			out.TopReceivingCountries = append(out.TopReceivingCountries, receivingCountryOutput{
				ReceivingCountry: c.ReceivingCountry,
				TotalCases:       c.TotalCases,
			})
		}
		out.TopStatesOfOrigin = trend.TopStatesOfOrigin(s.Data.Countries)
	} else if s.Err != nil {
		out.Errors = append(out.Errors, fmt.Sprintf("%s: %v", p.outgoing.Name(), s.Err))
	}

	return out
}

func render(w io.Writer, out output) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	defer tw.Flush()

	writeSeries(tw, "Incoming adoptions from "+out.Country+" by year", out.CountryTrend)
	writeSeries(tw, "Incoming adoptions in "+out.State+" by year", out.StateTrend)

	fmt.Fprintf(tw, "Top receiving countries (%s, total cases %d)\n", out.Year, out.TotalCases)
	for i, c := range out.TopReceivingCountries {
		fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, c.ReceivingCountry, c.TotalCases)
	}
	fmt.Fprintln(tw)

	fmt.Fprintf(tw, "Top U.S. states of origin (%s)\n", out.Year)
	for i, s := range out.TopStatesOfOrigin {
		fmt.Fprintf(tw, "  %d.\t%s\t%d\n", i+1, s.State, s.TotalCases)
	}

	for _, e := range out.Errors {
		fmt.Fprintf(tw, "\nerror: %s\n", e)
	}
}

func writeSeries(w io.Writer, title string, points []trend.Point) {
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, "  year\tadoptions\tchange")
	for _, p := range points {
		change := "-"
		if p.PercentChange != nil {
			change = fmt.Sprintf("%+.1f%%", *p.PercentChange)
		}
		fmt.Fprintf(w, "  %d\t%d\t%s\n", p.Year, p.Adoptions, change)
	}
	fmt.Fprintln(w)
}
