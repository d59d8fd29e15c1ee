package domain

// IncomingRow is one line of an incoming-adoptions report. Name holds the
// country of origin or the receiving U.S. state depending on the report.
type IncomingRow struct {
	Name                       string `db:"name"`
	AdoptionsFinalizedAbroad   int64  `db:"adoptions_finalized_abroad"`
	AdoptionsToBeFinalizedInUS int64  `db:"adoptions_to_be_finalized_in_us"`
	TotalAdoptions             int64  `db:"total_adoptions"`
}

// IncomingReport is the envelope for incoming-adoptions reports.
type IncomingReport struct {
	Selector       YearSelector
	Rows           []IncomingRow
	TotalAdoptions int64
}

// OutgoingRow is a flat (receiving country, state) line of the outgoing report.
type OutgoingRow struct {
	ReceivingCountry string `db:"receiving_country"`
	State            string `db:"us_state"`
	TotalCases       int64  `db:"total_cases"`
}

// OutgoingCountry groups a receiving country's cases by originating U.S. state.
type OutgoingCountry struct {
	ReceivingCountry string
	TotalCases       int64
	USStates         map[string]int64
}

// OutgoingReport is the envelope for the outgoing-adoptions report.
type OutgoingReport struct {
	Selector   YearSelector
	Countries  []OutgoingCountry
	TotalCases int64
}
