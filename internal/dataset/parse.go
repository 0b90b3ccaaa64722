package dataset

import (
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/welfare-index/internal/series"
)

// normalizeName lowercases and maps spaces and hyphens to underscores so
// "GDP per capita" and "gdp-per-capita" both match gdp_per_capita.
func normalizeName(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.Trim(s, `"`)
	s = strings.ReplaceAll(s, "-", "_")
	return strings.Join(strings.Fields(s), "_")
}

func parseYear(s string) (int, error) {
	s = strings.TrimSpace(s)
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, eris.Errorf("invalid year %q", s)
	}
	return y, nil
}

func parseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eris.Errorf("invalid value %q", s)
	}
	return v, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

// registryFromRows builds a registry from tabular rows (CSV or spreadsheet). The first
// non-blank row is the header and must name a year column and all four quantities.
// An empty cell means the year is missing from that series.
func registryFromRows(origin string, rows [][]string) (*Registry, error) {
	start := 0
	for start < len(rows) && blankRow(rows[start]) {
		start++
	}
	if start == len(rows) {
		return nil, eris.Errorf("%s: no header row", origin)
	}

	header := rows[start]
	yearCol := -1
	cols := make(map[Quantity]int, len(Quantities))
	for i, name := range header {
		if normalizeName(name) == "year" {
			yearCol = i
			continue
		}
		if q, ok := ParseQuantity(name); ok {
			cols[q] = i
		}
	}
	if yearCol < 0 {
		return nil, eris.Errorf("%s: missing year column", origin)
	}
	for _, q := range Quantities {
		if _, ok := cols[q]; !ok {
			return nil, eris.Errorf("%s: missing %s column", origin, q)
		}
	}

	points := make(map[Quantity][]series.Point, len(Quantities))
	seen := make(map[int]bool)
	for i := start + 1; i < len(rows); i++ {
		row := rows[i]
		if blankRow(row) {
			continue
		}
		line := i + 1
		year, err := parseYear(cell(row, yearCol))
		if err != nil {
			return nil, eris.Wrapf(err, "%s: row %d", origin, line)
		}
		if seen[year] {
			return nil, &series.DataIntegrityError{Series: origin, Year: year}
		}
		seen[year] = true
		for _, q := range Quantities {
			raw := strings.TrimSpace(cell(row, cols[q]))
			if raw == "" {
				continue
			}
			v, err := parseValue(raw)
			if err != nil {
				return nil, eris.Wrapf(err, "%s: row %d column %s", origin, line, q)
			}
			points[q] = append(points[q], series.Point{Year: year, Value: v})
		}
	}

	return registryFromPoints(points)
}

func registryFromPoints(points map[Quantity][]series.Point) (*Registry, error) {
	built := make([]*series.Series, len(Quantities))
	for i, q := range Quantities {
		s, err := series.New(string(q), points[q])
		if err != nil {
			return nil, err
		}
		built[i] = s
	}
	return NewRegistry(built[0], built[1], built[2], built[3])
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
