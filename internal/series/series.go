// Package series holds the annual observation series the index pipeline is built from.
package series

import (
	"sort"
)

// Point is a single annual observation.
type Point struct {
	Year  int
	Value float64
}

// Series maps years to one scalar observation. It is immutable once built.
type Series struct {
	name   string
	years  []int // ascending
	values map[int]float64
}

// New builds a series from points in any order. A year that appears twice is a
// DataIntegrityError, even if both values agree.
func New(name string, points []Point) (*Series, error) {
	s := &Series{
		name:   name,
		years:  make([]int, 0, len(points)),
		values: make(map[int]float64, len(points)),
	}
	for _, p := range points {
		if _, dup := s.values[p.Year]; dup {
			return nil, &DataIntegrityError{Series: name, Year: p.Year}
		}
		s.values[p.Year] = p.Value
		s.years = append(s.years, p.Year)
	}
	sort.Ints(s.years)
	return s, nil
}

// FromMap builds a series from a year map. Map keys are unique, so this cannot fail.
func FromMap(name string, m map[int]float64) *Series {
	s := &Series{
		name:   name,
		years:  make([]int, 0, len(m)),
		values: make(map[int]float64, len(m)),
	}
	for year, v := range m {
		s.values[year] = v
		s.years = append(s.years, year)
	}
	sort.Ints(s.years)
	return s
}

// Name returns the series identifier (e.g. "cpi").
func (s *Series) Name() string { return s.name }

// Len returns the number of observations.
func (s *Series) Len() int { return len(s.years) }

// Years returns a copy of the observed years in ascending order.
func (s *Series) Years() []int {
	out := make([]int, len(s.years))
	copy(out, s.years)
	return out
}

// Value returns the observation for year and whether it exists.
func (s *Series) Value(year int) (float64, bool) {
	v, ok := s.values[year]
	return v, ok
}

// Points returns all observations in ascending year order.
func (s *Series) Points() []Point {
	out := make([]Point, len(s.years))
	for i, y := range s.years {
		out[i] = Point{Year: y, Value: s.values[y]}
	}
	return out
}

// Span returns the first and last observed year. ok is false for an empty series.
func (s *Series) Span() (first, last int, ok bool) {
	if len(s.years) == 0 {
		return 0, 0, false
	}
	return s.years[0], s.years[len(s.years)-1], true
}

// CheckAligned verifies that every series covers exactly the same, non-empty set of
// years. Any year present in one series but absent from another is reported.
func CheckAligned(all ...*Series) error {
	union := make(map[int]struct{})
	for _, s := range all {
		for _, y := range s.years {
			union[y] = struct{}{}
		}
	}
	if len(union) == 0 {
		return &DataAlignmentError{}
	}

	years := make([]int, 0, len(union))
	for y := range union {
		years = append(years, y)
	}
	sort.Ints(years)

	var missing []MissingYear
	for _, y := range years {
		var lacking []string
		for _, s := range all {
			if _, ok := s.values[y]; !ok {
				lacking = append(lacking, s.name)
			}
		}
		if len(lacking) > 0 {
			missing = append(missing, MissingYear{Year: y, Series: lacking})
		}
	}
	if len(missing) > 0 {
		return &DataAlignmentError{Missing: missing}
	}
	return nil
}
