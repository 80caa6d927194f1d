package harness

import (
	"github.com/roach88/respwin/internal/record"
	"github.com/roach88/respwin/internal/response"
)

// Snapshot holds every projection of one reconstruction.
type Snapshot struct {
	Records    []record.RecordPair[int64]     `json:"records"`
	AllRecords []record.RecordPair[int64]     `json:"all_records"`
	Windows    []record.ResponseWindow[int64] `json:"windows"`

	// Exactly one of Histogram and HistogramError is set.
	Histogram      *response.Histogram[int64] `json:"histogram,omitempty"`
	HistogramError string                     `json:"histogram_error,omitempty"`
}

// Result is the outcome of a scenario execution.
type Result struct {
	// Pass is true when every assertion held.
	Pass bool `json:"pass"`

	// Snapshot is the observed output.
	Snapshot Snapshot `json:"snapshot"`

	// Errors contains assertion failures. Empty if Pass is true.
	Errors []string `json:"errors,omitempty"`
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:   true,
		Errors: []string{},
	}
}

// AddError adds a failure and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}
