package response

import "github.com/roach88/respwin/internal/record"

// Latency is one response time observed for the effect at End.
type Latency[T record.Timestamp] struct {
	End     T `json:"end"`
	Latency T `json:"latency"`
}

// BestCase returns end - start_max for every window: the shortest latency
// consistent with the timing.
func (r *Reconstructor[T]) BestCase() []Latency[T] {
	windows := r.pass()
	out := make([]Latency[T], len(windows))
	for i, w := range windows {
		out[i] = Latency[T]{End: w.End, Latency: w.End - w.StartMax}
	}
	return out
}

// WorstCase returns end - start_min for every window.
func (r *Reconstructor[T]) WorstCase() []Latency[T] {
	windows := r.pass()
	out := make([]Latency[T], len(windows))
	for i, w := range windows {
		out[i] = Latency[T]{End: w.End, Latency: w.End - w.StartMin}
	}
	return out
}
