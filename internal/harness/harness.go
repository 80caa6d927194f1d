package harness

import (
	"errors"
	"io"
	"log/slog"

	"github.com/roach88/respwin/internal/response"
)

// Harness executes scenarios.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger used for per-scenario diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a Harness. Without options it logs nothing.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default Harness.
func Run(s *Scenario) (*Result, error) {
	return New().Run(s)
}

// Run reconstructs the scenario's records and evaluates its assertions.
//
// Assertion failures are reported in Result.Errors. The returned error is
// reserved for failures that prevent a snapshot from being taken.
func (h *Harness) Run(s *Scenario) (*Result, error) {
	log := h.logger.With("scenario", s.Name)
	log.Debug("running scenario", "records", len(s.Records), "bin_width", s.BinWidth)

	snap, err := Capture(s)
	if err != nil {
		return nil, err
	}

	result := NewResult()
	result.Snapshot = snap

	for i, a := range s.Assertions {
		if err := evaluate(snap, a); err != nil {
			log.Debug("assertion failed", "index", i, "type", a.Type)
			result.AddError(err.Error())
		}
	}

	log.Debug("scenario finished", "pass", result.Pass, "failures", len(result.Errors))
	return result, nil
}

// Capture computes every projection for the scenario's records.
func Capture(s *Scenario) (Snapshot, error) {
	r := response.New(s.Records)
	snap := Snapshot{
		Records:    r.Records(),
		AllRecords: r.AllRecords(),
		Windows:    r.Windows(),
	}

	h, err := r.Histogram(s.BinWidth)
	var re *response.Error
	switch {
	case err == nil:
		snap.Histogram = &h
	case errors.As(err, &re):
		snap.HistogramError = string(re.Code)
	default:
		return Snapshot{}, err
	}
	return snap, nil
}
