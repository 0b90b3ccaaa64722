package dataset

import (
	"context"
	"encoding/csv"
	"os"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/welfare-index/internal/series"
)

// CSVFile reads a table with a year column and one column per quantity.
type CSVFile struct {
	Path string
}

func (s *CSVFile) Name() string { return "csv:" + s.Path }

// Load parses the file and validates the four resulting series.
func (s *CSVFile) Load(ctx context.Context) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "csv: open %s", s.Path)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // allow ragged trailing cells
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "csv: read %s", s.Path)
	}
	return registryFromRows("csv "+s.Path, rows)
}

// XLSXFile reads the same layout as CSVFile from a spreadsheet.
type XLSXFile struct {
	Path  string
	Sheet string // empty selects the first sheet
}

func (s *XLSXFile) Name() string { return "xlsx:" + s.Path }

// Load opens the workbook and parses the selected sheet.
func (s *XLSXFile) Load(ctx context.Context) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f, err := xlsx.OpenFile(s.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "xlsx: open %s", s.Path)
	}

	var sheet *xlsx.Sheet
	if s.Sheet != "" {
		var ok bool
		sheet, ok = f.Sheet[s.Sheet]
		if !ok {
			return nil, eris.Errorf("xlsx: sheet %q not found in %s", s.Sheet, s.Path)
		}
	} else {
		if len(f.Sheets) == 0 {
			return nil, eris.Errorf("xlsx: %s has no sheets", s.Path)
		}
		sheet = f.Sheets[0]
	}

	rows := make([][]string, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		if row == nil {
			continue
		}
		cells := make([]string, len(row.Cells))
		for j, c := range row.Cells {
			cells[j] = c.String()
		}
		rows = append(rows, cells)
	}
	return registryFromRows("xlsx "+s.Path, rows)
}

// YAMLFile reads one mapping per quantity, keyed by year:
//
//	spending:
//	  1991: 394.9
//	cpi:
//	  1991: 62.1
type YAMLFile struct {
	Path string
}

func (s *YAMLFile) Name() string { return "yaml:" + s.Path }

// Load decodes the document node by node so that a year listed twice is reported
// as a duplicate instead of a generic parse error.
func (s *YAMLFile) Load(ctx context.Context) (*Registry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "yaml: read %s", s.Path)
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrapf(err, "yaml: parse %s", s.Path)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, eris.Errorf("yaml: %s is empty", s.Path)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, eris.Errorf("yaml: %s: top level must be a mapping", s.Path)
	}

	points := make(map[Quantity][]series.Point, len(Quantities))
	for i := 0; i+1 < len(root.Content); i += 2 {
		key, body := root.Content[i], root.Content[i+1]
		q, ok := ParseQuantity(key.Value)
		if !ok {
			return nil, eris.Errorf("yaml: %s line %d: unknown quantity %q", s.Path, key.Line, key.Value)
		}
		if _, seen := points[q]; seen {
			return nil, eris.Errorf("yaml: %s line %d: quantity %q defined twice", s.Path, key.Line, q)
		}
		pts, err := yamlPoints(body)
		if err != nil {
			return nil, eris.Wrapf(err, "yaml: %s: %s", s.Path, q)
		}
		points[q] = pts
	}
	return registryFromPoints(points)
}

func yamlPoints(n *yaml.Node) ([]series.Point, error) {
	if n.Kind != yaml.MappingNode {
		return nil, eris.Errorf("line %d: expected a year mapping", n.Line)
	}
	pts := make([]series.Point, 0, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		year, err := strconv.Atoi(k.Value)
		if err != nil {
			return nil, eris.Errorf("line %d: invalid year %q", k.Line, k.Value)
		}
		if v.Kind != yaml.ScalarNode {
			return nil, eris.Errorf("line %d: value for %d is not a number", v.Line, year)
		}
		val, err := strconv.ParseFloat(v.Value, 64)
		if err != nil {
			return nil, eris.Errorf("line %d: invalid value %q for %d", v.Line, v.Value, year)
		}
		pts = append(pts, series.Point{Year: year, Value: val})
	}
	return pts, nil
}
