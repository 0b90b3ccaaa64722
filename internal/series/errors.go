package series

import (
	"fmt"
	"strings"
)

// DataIntegrityError reports a year that occurs more than once within one series.
type DataIntegrityError struct {
	Series string
	Year   int
}

func (e *DataIntegrityError) Error() string {
	return fmt.Sprintf("integrity: duplicate year %d in series %s", e.Year, e.Series)
}

// MissingYear names a year and the series that do not cover it.
type MissingYear struct {
	Year   int
	Series []string
}

// DataAlignmentError reports years that are not present in every series.
// An empty Missing list means there were no observations at all.
type DataAlignmentError struct {
	Missing []MissingYear
}

func (e *DataAlignmentError) Error() string {
	if len(e.Missing) == 0 {
		return "alignment: no observations to align"
	}
	parts := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		parts[i] = fmt.Sprintf("year %d missing from %s", m.Year, strings.Join(m.Series, ", "))
	}
	return "alignment: " + strings.Join(parts, "; ")
}

// Years returns the years that lack a join partner, ascending.
func (e *DataAlignmentError) Years() []int {
	out := make([]int, len(e.Missing))
	for i, m := range e.Missing {
		out[i] = m.Year
	}
	return out
}
