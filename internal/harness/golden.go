package harness

import (
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/respwin/internal/canon"
	"github.com/roach88/respwin/internal/record"
)

// toCanonicalMap converts a snapshot to the generic form canon.Marshal accepts.
func (s Snapshot) toCanonicalMap(name string, binWidth int64) map[string]any {
	m := map[string]any{
		"scenario_name": name,
		"bin_width":     binWidth,
		"records":       pairsValue(s.Records),
		"all_records":   pairsValue(s.AllRecords),
		"windows":       windowsValue(s.Windows),
	}
	if s.Histogram != nil {
		counts := make([]any, len(s.Histogram.Counts))
		for i, c := range s.Histogram.Counts {
			counts[i] = c
		}
		edges := make([]any, len(s.Histogram.Edges))
		for i, e := range s.Histogram.Edges {
			edges[i] = e
		}
		m["histogram"] = map[string]any{"counts": counts, "edges": edges}
	} else {
		m["histogram_error"] = s.HistogramError
	}
	return m
}

func pairsValue(pairs []record.RecordPair[int64]) []any {
	out := make([]any, len(pairs))
	for i, p := range pairs {
		out[i] = map[string]any{"start": p.Start, "end": p.End}
	}
	return out
}

func windowsValue(windows []record.ResponseWindow[int64]) []any {
	out := make([]any, len(windows))
	for i, w := range windows {
		out[i] = map[string]any{"start_min": w.StartMin, "start_max": w.StartMax, "end": w.End}
	}
	return out
}

// MarshalSnapshot returns the canonical JSON stored in golden files.
func MarshalSnapshot(s *Scenario, snap Snapshot) ([]byte, error) {
	return canon.Marshal(snap.toCanonicalMap(s.Name, s.BinWidth))
}

// RunWithGolden executes a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns the result so callers can also check assertions.
func RunWithGolden(t *testing.T, s *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(s)
	if err != nil {
		return nil, err
	}

	data, err := MarshalSnapshot(s, result.Snapshot)
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, s.Name, data)

	return result, nil
}
