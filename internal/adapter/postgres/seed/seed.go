// Package seed loads an adoption statistics dataset into an empty schema.
// It is the only code path that writes to the database; the API itself is
// read-only.
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/jackc/pgx/v5"
	"gopkg.in/yaml.v3"
)

// Dataset is a complete set of reference and fact rows.
type Dataset struct {
	Years           []int               `yaml:"years"`
	States          []string            `yaml:"states"`
	Countries       []string            `yaml:"countries"`
	Incoming        []IncomingFact      `yaml:"incoming"`
	IncomingByState []IncomingStateFact `yaml:"incoming_by_state"`
	Outgoing        []OutgoingFact      `yaml:"outgoing"`
}

// IncomingFact is one row of the incoming-by-country table.
type IncomingFact struct {
	Year                       int    `yaml:"year"`
	Country                    string `yaml:"country"`
	AdoptionsFinalizedAbroad   int    `yaml:"adoptions_finalized_abroad"`
	AdoptionsToBeFinalizedInUS int    `yaml:"adoptions_to_be_finalized_in_us"`
	TotalAdoptions             int    `yaml:"total_adoptions"`
}

// IncomingStateFact is one row of the incoming-by-state table.
type IncomingStateFact struct {
	Year                       int    `yaml:"year"`
	State                      string `yaml:"state"`
	AdoptionsFinalizedAbroad   int    `yaml:"adoptions_finalized_abroad"`
	AdoptionsToBeFinalizedInUS int    `yaml:"adoptions_to_be_finalized_in_us"`
	TotalAdoptions             int    `yaml:"total_adoptions"`
}

// OutgoingFact is one row of the outgoing table.
type OutgoingFact struct {
	Year             int    `yaml:"year"`
	State            string `yaml:"state"`
	ReceivingCountry string `yaml:"receiving_country"`
	NumberOfCases    int    `yaml:"number_of_cases"`
}

// ReadFile parses a YAML dataset file.
func ReadFile(path string) (Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read dataset %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f, path)
}

// Decode parses a YAML dataset from r. name only labels errors.
func Decode(r io.Reader, name string) (Dataset, error) {
	var ds Dataset
	if err := yaml.NewDecoder(r).Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return Dataset{}, fmt.Errorf("parse dataset %s: empty document", name)
		}
		return Dataset{}, fmt.Errorf("parse dataset %s: %w", name, err)
	}
	return ds, nil
}

// Beginner starts transactions; satisfied by *pgxpool.Pool.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

const (
	insertYearSQL    = `INSERT INTO years (year) VALUES ($1) ON CONFLICT (year) DO NOTHING`
	insertStateSQL   = `INSERT INTO states (state_name) VALUES ($1) ON CONFLICT (state_name) DO NOTHING`
	insertCountrySQL = `INSERT INTO countries (country_name) VALUES ($1) ON CONFLICT (country_name) DO NOTHING`

	insertIncomingSQL = `
INSERT INTO incoming_adoptions (year_id, country_id, adoptions_finalized_abroad, adoptions_to_be_finalized_in_us, total_adoptions)
SELECT y.year_id, c.country_id, $3, $4, $5
FROM years y, countries c
WHERE y.year = $1 AND c.country_name = $2`

	insertIncomingStateSQL = `
INSERT INTO incoming_adoptions_by_state (year_id, state_id, adoptions_finalized_abroad, adoptions_to_be_finalized_in_us, total_adoptions)
SELECT y.year_id, s.state_id, $3, $4, $5
FROM years y, states s
WHERE y.year = $1 AND s.state_name = $2`

	insertOutgoingSQL = `
INSERT INTO outgoing_adoptions (year_id, state_id, receiving_country, number_of_cases)
SELECT y.year_id, s.state_id, $3, $4
FROM years y, states s
WHERE y.year = $1 AND s.state_name = $2`
)

// Load inserts the dataset in a single transaction. Dimensions are
// inserted first and are idempotent; every fact row must resolve its year
// and dimension or the whole load is rolled back.
func Load(ctx context.Context, db Beginner, ds Dataset) (err error) {
	tx, err := db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	dims := &pgx.Batch{}
	for _, y := range ds.Years {
		dims.Queue(insertYearSQL, y)
	}
	for _, s := range ds.States {
		dims.Queue(insertStateSQL, s)
	}
	for _, c := range ds.Countries {
		dims.Queue(insertCountrySQL, c)
	}
	if err = runBatch(ctx, tx, dims, nil); err != nil {
		return fmt.Errorf("insert dimensions: %w", err)
	}

	facts := &pgx.Batch{}
	var labels []string
	for _, f := range ds.Incoming {
		facts.Queue(insertIncomingSQL, f.Year, f.Country,
			f.AdoptionsFinalizedAbroad, f.AdoptionsToBeFinalizedInUS, f.TotalAdoptions)
		labels = append(labels, fmt.Sprintf("incoming %d/%s", f.Year, f.Country))
	}
	for _, f := range ds.IncomingByState {
		facts.Queue(insertIncomingStateSQL, f.Year, f.State,
			f.AdoptionsFinalizedAbroad, f.AdoptionsToBeFinalizedInUS, f.TotalAdoptions)
		labels = append(labels, fmt.Sprintf("incoming by state %d/%s", f.Year, f.State))
	}
	for _, f := range ds.Outgoing {
		facts.Queue(insertOutgoingSQL, f.Year, f.State, f.ReceivingCountry, f.NumberOfCases)
		labels = append(labels, fmt.Sprintf("outgoing %d/%s/%s", f.Year, f.State, f.ReceivingCountry))
	}
	if err = runBatch(ctx, tx, facts, labels); err != nil {
		return fmt.Errorf("insert facts: %w", err)
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// runBatch executes b and, when labels is non-nil, requires every
// statement to insert exactly one row.
func runBatch(ctx context.Context, tx pgx.Tx, b *pgx.Batch, labels []string) error {
	if b.Len() == 0 {
		return nil
	}

	br := tx.SendBatch(ctx, b)
	for i := 0; i < b.Len(); i++ {
		tag, err := br.Exec()
		if err != nil {
			_ = br.Close()
			return err
		}
		if labels != nil && tag.RowsAffected() != 1 {
			_ = br.Close()
			return fmt.Errorf("%s: unknown year or dimension", labels[i])
		}
	}
	return br.Close()
}
