package source

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/roach88/respwin/internal/record"
)

// Default column names used when neither the caller nor the document names them.
const (
	DefaultStartColumn = "start"
	DefaultEndColumn   = "end"
)

// Format identifies a record-set encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCUE  Format = "cue"
)

// Columns names the start and end columns. Empty fields defer to the
// document, then to the defaults.
type Columns struct {
	Start string
	End   string
}

// Set is a loaded record set in source order.
type Set struct {
	Name        string
	StartColumn string
	EndColumn   string
	Records     []record.FlowRecord[int64]

	// Skipped counts records lacking one of the two columns.
	Skipped int
}

// document is the decoded form shared by the YAML and JSON loaders.
type document struct {
	Name        string           `yaml:"name" json:"name"`
	StartColumn string           `yaml:"start_column" json:"start_column"`
	EndColumn   string           `yaml:"end_column" json:"end_column"`
	Records     []map[string]any `yaml:"records" json:"records"`
}

// FormatOf derives the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".cue":
		return FormatCUE, nil
	default:
		return "", fmt.Errorf("unsupported record file extension %q", filepath.Ext(path))
	}
}

// Load reads a record set from path.
func Load(path string, cols Columns) (*Set, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read records: %w", err)
	}
	set, err := Parse(data, format, cols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if set.Name == "" {
		set.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return set, nil
}

// Parse decodes a record set in the given format.
func Parse(data []byte, format Format, cols Columns) (*Set, error) {
	switch format {
	case FormatYAML:
		return parseYAML(data, cols)
	case FormatJSON:
		return parseJSON(data, cols)
	case FormatCUE:
		return parseCUE(data, cols)
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// resolve picks the effective column names.
func resolve(cols Columns, docStart, docEnd string) (string, string) {
	start, end := cols.Start, cols.End
	if start == "" {
		start = docStart
	}
	if start == "" {
		start = DefaultStartColumn
	}
	if end == "" {
		end = docEnd
	}
	if end == "" {
		end = DefaultEndColumn
	}
	return start, end
}

// fromDocument converts generic rows into flow records.
func fromDocument(doc document, cols Columns) (*Set, error) {
	start, end := resolve(cols, doc.StartColumn, doc.EndColumn)
	set := &Set{
		Name:        doc.Name,
		StartColumn: start,
		EndColumn:   end,
		Records:     make([]record.FlowRecord[int64], 0, len(doc.Records)),
	}

	for i, row := range doc.Records {
		sv, okStart := row[start]
		ev, okEnd := row[end]
		if !okStart || !okEnd {
			set.Skipped++
			continue
		}
		s, err := toInt64(sv)
		if err != nil {
			return nil, fmt.Errorf("records[%d].%s: %w", i, start, err)
		}
		e, err := toInt64(ev)
		if err != nil {
			return nil, fmt.Errorf("records[%d].%s: %w", i, end, err)
		}
		set.Records = append(set.Records, record.FlowRecord[int64]{Start: s, End: e})
	}
	return set, nil
}

// toInt64 accepts integers and integral floats.
func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int64:
		return n, nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("timestamp %d overflows int64", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) || math.IsNaN(n) {
			return 0, fmt.Errorf("timestamp %v is not an integer", n)
		}
		return int64(n), nil
	case json.Number:
		return n.Int64()
	case nil:
		return 0, fmt.Errorf("timestamp is null")
	default:
		return 0, fmt.Errorf("timestamp has type %T, want number", v)
	}
}
