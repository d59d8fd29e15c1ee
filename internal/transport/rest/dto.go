package rest

import "github.com/heartmarshall/adoption-stats/internal/domain"

// listResponse is the envelope of the dimension lists. The year is always "all".
type listResponse[T any] struct {
	Year string `json:"year"`
	Data []T    `json:"data"`
}

type incomingCountryDTO struct {
	Country                    string `json:"country"`
	AdoptionsFinalizedAbroad   int64  `json:"adoptions_finalized_abroad"`
	AdoptionsToBeFinalizedInUS int64  `json:"adoptions_to_be_finalized_in_us"`
	TotalAdoptions             int64  `json:"total_adoptions"`
}

type incomingStateDTO struct {
	State                      string `json:"state"`
	AdoptionsFinalizedAbroad   int64  `json:"adoptions_finalized_abroad"`
	AdoptionsToBeFinalizedInUS int64  `json:"adoptions_to_be_finalized_in_us"`
	TotalAdoptions             int64  `json:"total_adoptions"`
}

type incomingResponse[T any] struct {
	Year           string `json:"year"`
	Data           []T    `json:"data"`
	TotalAdoptions int64  `json:"total_adoptions"`
}

type outgoingCountryDTO struct {
	ReceivingCountry string           `json:"receiving_country"`
	TotalCases       int64            `json:"total_cases"`
	USStates         map[string]int64 `json:"us_states"`
}

type outgoingResponse struct {
	Year       string               `json:"year"`
	Data       []outgoingCountryDTO `json:"data"`
	TotalCases int64                `json:"total_cases"`
}

func toIncomingByCountry(r domain.IncomingReport) incomingResponse[incomingCountryDTO] {
	data := make([]incomingCountryDTO, 0, len(r.Rows))
	for _, row := range r.Rows {
		data = append(data, incomingCountryDTO{
			Country:                    row.Name,
			AdoptionsFinalizedAbroad:   row.AdoptionsFinalizedAbroad,
			AdoptionsToBeFinalizedInUS: row.AdoptionsToBeFinalizedInUS,
			TotalAdoptions:             row.TotalAdoptions,
		})
	}
	return incomingResponse[incomingCountryDTO]{
		Year:           r.Selector.String(),
		Data:           data,
		TotalAdoptions: r.TotalAdoptions,
	}
}

func toIncomingByState(r domain.IncomingReport) incomingResponse[incomingStateDTO] {
	data := make([]incomingStateDTO, 0, len(r.Rows))
	for _, row := range r.Rows {
		data = append(data, incomingStateDTO{
			State:                      row.Name,
			AdoptionsFinalizedAbroad:   row.AdoptionsFinalizedAbroad,
			AdoptionsToBeFinalizedInUS: row.AdoptionsToBeFinalizedInUS,
			TotalAdoptions:             row.TotalAdoptions,
		})
	}
	return incomingResponse[incomingStateDTO]{
		Year:           r.Selector.String(),
		Data:           data,
		TotalAdoptions: r.TotalAdoptions,
	}
}

func toOutgoing(r domain.OutgoingReport) outgoingResponse {
	data := make([]outgoingCountryDTO, 0, len(r.Countries))
	for _, c := range r.Countries {
		data = append(data, outgoingCountryDTO{
			ReceivingCountry: c.ReceivingCountry,
			TotalCases:       c.TotalCases,
			USStates:         c.USStates,
		})
	}
	return outgoingResponse{
		Year:       r.Selector.String(),
		Data:       data,
		TotalCases: r.TotalCases,
	}
}
