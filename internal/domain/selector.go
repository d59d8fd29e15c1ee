package domain

import (
	"strconv"
	"strings"
)

// AllYears is the literal path segment selecting the cross-year aggregate.
const AllYears = "all"

// YearSelector picks between the cross-year aggregate and a single fiscal year.
// The zero value selects all years.
type YearSelector struct {
	year     int
	specific bool
}

// All returns the selector that aggregates across every year.
func All() YearSelector { return YearSelector{} }

// Specific returns the selector for a single fiscal year.
func Specific(year int) YearSelector {
	return YearSelector{year: year, specific: true}
}

// ParseYearSelector converts a path segment into a YearSelector.
// "all" selects every year; a base-10 integer selects that year.
func ParseYearSelector(s string) (YearSelector, error) {
	s = strings.TrimSpace(s)
	if s == AllYears {
		return All(), nil
	}

	year, err := strconv.Atoi(s)
	if err != nil {
		return YearSelector{}, NewValidationError("year", "must be \"all\" or an integer year")
	}
	return Specific(year), nil
}

// IsAll reports whether the selector aggregates across all years.
func (s YearSelector) IsAll() bool { return !s.specific }

// Year returns the selected year and true, or 0 and false for All.
func (s YearSelector) Year() (int, bool) {
	return s.year, s.specific
}

// String renders the selector the way it appears in the URL and in
// response envelopes.
func (s YearSelector) String() string {
	if !s.specific {
		return AllYears
	}
	return strconv.Itoa(s.year)
}
