package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/respwin/internal/record"
	"github.com/roach88/respwin/internal/response"
)

// Scenario defines a conformance scenario.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// BinWidth is the histogram bin width. Defaults to 1.
	BinWidth int64 `yaml:"bin_width,omitempty"`

	// Records is the input in source order.
	Records []record.FlowRecord[int64] `yaml:"records"`

	// Assertions validate the projections.
	Assertions []Assertion `yaml:"assertions"`
}

// Assertion validates one projection of the reconstruction.
type Assertion struct {
	// Type selects the projection: records, all_records, windows, histogram,
	// histogram_error.
	Type string `yaml:"type"`

	// Pairs is the expected output of records / all_records.
	Pairs []record.RecordPair[int64] `yaml:"pairs,omitempty"`

	// Windows is the expected output of windows.
	Windows []record.ResponseWindow[int64] `yaml:"windows,omitempty"`

	// Counts and Edges are the expected histogram.
	Counts []int   `yaml:"counts,omitempty"`
	Edges  []int64 `yaml:"edges,omitempty"`

	// Code is the expected error code for histogram_error.
	Code string `yaml:"code,omitempty"`
}

// Assertion type constants.
const (
	AssertRecords        = "records"
	AssertAllRecords     = "all_records"
	AssertWindows        = "windows"
	AssertHistogram      = "histogram"
	AssertHistogramError = "histogram_error"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML with strict field validation.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if scenario.BinWidth == 0 {
		scenario.BinWidth = 1
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.BinWidth < 0 {
		return fmt.Errorf("bin_width must be positive")
	}
	if len(s.Assertions) == 0 {
		return fmt.Errorf("assertions list is required and must be non-empty")
	}
	for i, a := range s.Assertions {
		if err := validateAssertion(i, &a); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	switch a.Type {
	case "":
		return fmt.Errorf("assertions[%d]: type is required", index)
	case AssertRecords, AssertAllRecords, AssertWindows:
	case AssertHistogram:
		if len(a.Edges) != len(a.Counts)+1 {
			return fmt.Errorf("assertions[%d]: histogram needs len(edges) == len(counts)+1", index)
		}
	case AssertHistogramError:
		if a.Code != string(response.ErrCodeInvalidRecords) && a.Code != string(response.ErrCodeInvalidBinWidth) {
			return fmt.Errorf("assertions[%d]: unknown error code %q", index, a.Code)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}
