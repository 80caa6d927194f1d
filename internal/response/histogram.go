package response

import (
	"math"
	"slices"

	"github.com/roach88/respwin/internal/record"
)

// Histogram is a latency distribution. len(Edges) == len(Counts)+1.
// Bins are half-open except the last, which is closed.
type Histogram[T record.Timestamp] struct {
	Counts []int `json:"counts"`
	Edges  []T   `json:"edges"`
}

// Total returns the number of samples in the histogram.
func (h Histogram[T]) Total() int {
	n := 0
	for _, c := range h.Counts {
		n += c
	}
	return n
}

// Histogram bins every latency each window admits, from end-start_max to
// end-start_min stepping by binWidth, into bins of binWidth starting at the
// smallest sample.
//
// Returns an INVALID_RECORDS error when no window can be derived and an
// INVALID_BIN_WIDTH error when binWidth is not positive.
func (r *Reconstructor[T]) Histogram(binWidth T) (Histogram[T], error) {
	if !(binWidth > 0) {
		return Histogram[T]{}, NewBinWidthError(binWidth)
	}
	windows := r.pass()
	if len(windows) == 0 {
		return Histogram[T]{}, NewInvalidRecordsError(r.count, len(windows))
	}
	return binSamples(latencySamples(windows, binWidth), binWidth), nil
}

func latencySamples[T record.Timestamp](windows []record.ResponseWindow[T], step T) []T {
	var samples []T
	for _, w := range windows {
		lo, hi := w.End-w.StartMax, w.End-w.StartMin
		if lo > hi {
			lo, hi = hi, lo
		}
		for i := 0; ; i++ {
			v := lo + T(i)*step
			if v > hi {
				break
			}
			samples = append(samples, v)
		}
	}
	return samples
}

func binSamples[T record.Timestamp](samples []T, width T) Histogram[T] {
	lo, hi := slices.Min(samples), slices.Max(samples)

	n := int(math.Ceil(float64(hi-lo) / float64(width)))
	if n < 1 {
		n = 1
	}

	edges := make([]T, n+1)
	for i := range edges {
		edges[i] = lo + T(i)*width
	}

	counts := make([]int, n)
	for _, v := range samples {
		idx := int(float64(v-lo) / float64(width))
		if idx >= n {
			idx = n - 1
		}
		counts[idx]++
	}

	return Histogram[T]{Counts: counts, Edges: edges}
}
