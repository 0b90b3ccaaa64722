package index

import (
	"fmt"
)

// ReferenceYearNotFoundError reports a reference year outside the aligned data.
type ReferenceYearNotFoundError struct {
	Year      int
	FirstYear int
	LastYear  int
}

func (e *ReferenceYearNotFoundError) Error() string {
	if e.FirstYear == 0 && e.LastYear == 0 {
		return fmt.Sprintf("reference year %d not found: no records", e.Year)
	}
	return fmt.Sprintf("reference year %d not found in data (%d-%d)", e.Year, e.FirstYear, e.LastYear)
}

// InvalidObservationError reports a value that would make the index arithmetic
// divide by zero, flip sign, or propagate NaN/Inf.
type InvalidObservationError struct {
	Year   int
	Field  string
	Value  float64
	Reason string
}

func (e *InvalidObservationError) Error() string {
	return fmt.Sprintf("invalid observation: %s in %d is %g (%s)", e.Field, e.Year, e.Value, e.Reason)
}
