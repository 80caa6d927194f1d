package harness

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/respwin/internal/record"
)

func TestLoadScenario_Valid(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "double_flow.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "double_flow", s.Name)
	assert.Equal(t, int64(1), s.BinWidth)
	assert.Equal(t, []record.FlowRecord[int64]{{Start: 0, End: 1}, {Start: 2, End: 3}}, s.Records)
	require.Len(t, s.Assertions, 4)
	assert.Equal(t, AssertHistogram, s.Assertions[3].Type)
	assert.Equal(t, []int{1, 2}, s.Assertions[3].Counts)
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}

func TestParseScenario_DefaultBinWidth(t *testing.T) {
	s, err := ParseScenario([]byte(`
name: x
description: y
records: []
assertions:
  - type: windows
`))
	require.NoError(t, err)
	assert.Equal(t, int64(1), s.BinWidth)
}

func TestParseScenario_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "unknown field",
			yaml:    "name: x\ndescription: y\nassertion: []\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "missing name",
			yaml:    "description: y\nassertions: [{type: windows}]\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			yaml:    "name: x\nassertions: [{type: windows}]\n",
			wantErr: "description is required",
		},
		{
			name:    "no assertions",
			yaml:    "name: x\ndescription: y\n",
			wantErr: "assertions list is required",
		},
		{
			name:    "negative bin width",
			yaml:    "name: x\ndescription: y\nbin_width: -1\nassertions: [{type: windows}]\n",
			wantErr: "bin_width must be positive",
		},
		{
			name:    "empty type",
			yaml:    "name: x\ndescription: y\nassertions: [{code: X}]\n",
			wantErr: "type is required",
		},
		{
			name:    "unknown type",
			yaml:    "name: x\ndescription: y\nassertions: [{type: latency}]\n",
			wantErr: "unknown assertion type",
		},
		{
			name:    "histogram shape",
			yaml:    "name: x\ndescription: y\nassertions: [{type: histogram, counts: [1], edges: [0]}]\n",
			wantErr: "len(edges) == len(counts)+1",
		},
		{
			name:    "unknown error code",
			yaml:    "name: x\ndescription: y\nassertions: [{type: histogram_error, code: BOOM}]\n",
			wantErr: "unknown error code",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseScenario([]byte(tc.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
