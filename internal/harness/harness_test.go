package harness

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/respwin/internal/record"
)

func loadScenarios(t *testing.T) []*Scenario {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", "scenarios", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		require.NoError(t, err, p)
		scenarios = append(scenarios, s)
	}
	return scenarios
}

func TestRun_Scenarios(t *testing.T) {
	for _, s := range loadScenarios(t) {
		t.Run(s.Name, func(t *testing.T) {
			result, err := Run(s)
			require.NoError(t, err)
			assert.True(t, result.Pass, "errors: %v", result.Errors)
			assert.Empty(t, result.Errors)
		})
	}
}

func TestRun_ReportsFailedAssertions(t *testing.T) {
	s := &Scenario{
		Name:        "wrong_expectations",
		Description: "every assertion is wrong",
		BinWidth:    1,
		Records:     []record.FlowRecord[int64]{{Start: 0, End: 1}, {Start: 2, End: 3}},
		Assertions: []Assertion{
			{Type: AssertRecords, Pairs: []record.RecordPair[int64]{{Start: 2, End: 3}}},
			{Type: AssertWindows},
			{Type: AssertHistogram, Counts: []int{3}, Edges: []int64{1, 3}},
			{Type: AssertHistogramError, Code: "INVALID_RECORDS"},
		},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 4)
	assert.Contains(t, result.Errors[0], "Assertion failed: records")
	assert.Contains(t, result.Errors[0], "Actual: [(0,3) (2,3)]")
	assert.Contains(t, result.Errors[1], "{0..2@3}")
	assert.Contains(t, result.Errors[2], "counts [1 2] edges [1 2 3]")
	assert.Contains(t, result.Errors[3], "Expected: INVALID_RECORDS")
}

func TestRun_HistogramErrorInSnapshot(t *testing.T) {
	s := &Scenario{
		Name:        "single",
		Description: "single flow",
		BinWidth:    1,
		Records:     []record.FlowRecord[int64]{{Start: 0, End: 1}},
		Assertions:  []Assertion{{Type: AssertHistogram, Counts: []int{}, Edges: []int64{0}}},
	}

	result, err := Run(s)
	require.NoError(t, err)

	assert.Nil(t, result.Snapshot.Histogram)
	assert.Equal(t, "INVALID_RECORDS", result.Snapshot.HistogramError)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "Actual: error INVALID_RECORDS")
}

func TestHarness_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := &Scenario{
		Name:        "logged",
		Description: "d",
		BinWidth:    1,
		Assertions:  []Assertion{{Type: AssertWindows}},
	}
	result, err := New(WithLogger(logger)).Run(s)
	require.NoError(t, err)
	assert.True(t, result.Pass)

	assert.Contains(t, buf.String(), "scenario=logged")
	assert.Contains(t, buf.String(), "scenario finished")
}
