package testhelper

import "github.com/heartmarshall/adoption-stats/internal/adapter/postgres/seed"

// Fixture is the dataset every integration test reads. 2020 is a known
// year with no fact rows; 1999 is not a year at all.
//
// Cross-year totals:
//
//	incoming by country: China 270, Ukraine 70, Colombia 10 (sum 350)
//	incoming by state:   Texas 160, Ohio 65, Florida 50 (sum 275)
//	outgoing:            Canada 9 (Texas 8, Ohio 1), Ireland 2, Netherlands 2 (sum 13)
var Fixture = seed.Dataset{
	Years:     []int{2018, 2019, 2020},
	States:    []string{"Florida", "Ohio", "Texas"},
	Countries: []string{"China", "Colombia", "India", "Ukraine"},
	Incoming: []seed.IncomingFact{
		{Year: 2018, Country: "China", AdoptionsFinalizedAbroad: 100, AdoptionsToBeFinalizedInUS: 50, TotalAdoptions: 150},
		{Year: 2018, Country: "Ukraine", AdoptionsFinalizedAbroad: 20, AdoptionsToBeFinalizedInUS: 10, TotalAdoptions: 30},
		{Year: 2019, Country: "China", AdoptionsFinalizedAbroad: 80, AdoptionsToBeFinalizedInUS: 40, TotalAdoptions: 120},
		{Year: 2019, Country: "Ukraine", AdoptionsFinalizedAbroad: 25, AdoptionsToBeFinalizedInUS: 15, TotalAdoptions: 40},
		{Year: 2019, Country: "Colombia", AdoptionsFinalizedAbroad: 5, AdoptionsToBeFinalizedInUS: 5, TotalAdoptions: 10},
	},
	IncomingByState: []seed.IncomingStateFact{
		{Year: 2018, State: "Texas", AdoptionsFinalizedAbroad: 60, AdoptionsToBeFinalizedInUS: 20, TotalAdoptions: 80},
		{Year: 2018, State: "Ohio", AdoptionsFinalizedAbroad: 40, AdoptionsToBeFinalizedInUS: 10, TotalAdoptions: 50},
		{Year: 2019, State: "Texas", AdoptionsFinalizedAbroad: 50, AdoptionsToBeFinalizedInUS: 30, TotalAdoptions: 80},
		{Year: 2019, State: "Florida", AdoptionsFinalizedAbroad: 30, AdoptionsToBeFinalizedInUS: 20, TotalAdoptions: 50},
		{Year: 2019, State: "Ohio", AdoptionsFinalizedAbroad: 10, AdoptionsToBeFinalizedInUS: 5, TotalAdoptions: 15},
	},
	Outgoing: []seed.OutgoingFact{
		{Year: 2018, State: "Texas", ReceivingCountry: "Canada", NumberOfCases: 3},
		{Year: 2018, State: "Ohio", ReceivingCountry: "Canada", NumberOfCases: 1},
		{Year: 2018, State: "Florida", ReceivingCountry: "Ireland", NumberOfCases: 2},
		{Year: 2019, State: "Texas", ReceivingCountry: "Canada", NumberOfCases: 4},
		{Year: 2019, State: "Texas", ReceivingCountry: "Canada", NumberOfCases: 1},
		{Year: 2019, State: "Ohio", ReceivingCountry: "Netherlands", NumberOfCases: 2},
	},
}
