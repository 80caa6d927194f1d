package harness

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/roach88/respwin/internal/record"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type     string // Assertion type for categorization
	Expected string // Human-readable expected outcome
	Actual   string // Human-readable actual outcome
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s", e.Actual)
	return buf.String()
}

func evaluate(snap Snapshot, a Assertion) error {
	switch a.Type {
	case AssertRecords:
		return assertPairs(a.Type, snap.Records, a.Pairs)
	case AssertAllRecords:
		return assertPairs(a.Type, snap.AllRecords, a.Pairs)
	case AssertWindows:
		return assertWindows(snap.Windows, a.Windows)
	case AssertHistogram:
		return assertHistogram(snap, a)
	case AssertHistogramError:
		if snap.HistogramError != a.Code {
			return &AssertionError{
				Type:     a.Type,
				Expected: a.Code,
				Actual:   describeHistogram(snap),
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown assertion type %q", a.Type)
	}
}

// assertPairs requires an exact, ordered match. A nil expectation means empty.
func assertPairs(kind string, got, want []record.RecordPair[int64]) error {
	if len(got) == 0 && len(want) == 0 {
		return nil
	}
	if !reflect.DeepEqual(got, want) {
		return &AssertionError{
			Type:     kind,
			Expected: formatPairs(want),
			Actual:   formatPairs(got),
		}
	}
	return nil
}

func assertWindows(got, want []record.ResponseWindow[int64]) error {
	if len(got) == 0 && len(want) == 0 {
		return nil
	}
	if !reflect.DeepEqual(got, want) {
		return &AssertionError{
			Type:     AssertWindows,
			Expected: formatWindows(want),
			Actual:   formatWindows(got),
		}
	}
	return nil
}

func assertHistogram(snap Snapshot, a Assertion) error {
	expected := fmt.Sprintf("counts %v edges %v", a.Counts, a.Edges)
	if snap.Histogram == nil {
		return &AssertionError{Type: AssertHistogram, Expected: expected, Actual: describeHistogram(snap)}
	}
	if !reflect.DeepEqual(snap.Histogram.Counts, a.Counts) || !reflect.DeepEqual(snap.Histogram.Edges, a.Edges) {
		return &AssertionError{Type: AssertHistogram, Expected: expected, Actual: describeHistogram(snap)}
	}
	return nil
}

func describeHistogram(snap Snapshot) string {
	if snap.Histogram == nil {
		return "error " + snap.HistogramError
	}
	return fmt.Sprintf("counts %v edges %v", snap.Histogram.Counts, snap.Histogram.Edges)
}

func formatPairs(pairs []record.RecordPair[int64]) string {
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("(%d,%d)", p.Start, p.End)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func formatWindows(windows []record.ResponseWindow[int64]) string {
	parts := make([]string, len(windows))
	for i, w := range windows {
		parts[i] = fmt.Sprintf("{%d..%d@%d}", w.StartMin, w.StartMax, w.End)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
