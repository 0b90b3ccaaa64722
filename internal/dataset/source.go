package dataset

import (
	"github.com/rotisserie/eris"
)

// Source kinds accepted by NewSource.
const (
	KindBuiltin = "builtin"
	KindYAML    = "yaml"
	KindCSV     = "csv"
	KindXLSX    = "xlsx"
)

// NewSource returns the Source for kind. File kinds require a path.
func NewSource(kind, path, sheet string) (Source, error) {
	switch kind {
	case "", KindBuiltin:
		return Builtin{}, nil
	case KindYAML, KindCSV, KindXLSX:
		if path == "" {
			return nil, eris.Errorf("dataset: source %q requires a path", kind)
		}
	default:
		return nil, eris.Errorf("dataset: unknown source %q (valid: builtin, yaml, csv, xlsx)", kind)
	}

	switch kind {
	case KindYAML:
		return &YAMLFile{Path: path}, nil
	case KindCSV:
		return &CSVFile{Path: path}, nil
	default:
		return &XLSXFile{Path: path, Sheet: sheet}, nil
	}
}
