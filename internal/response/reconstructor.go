package response

import (
	"slices"
	"sync"

	"github.com/roach88/respwin/internal/record"
)

// Reconstructor derives response windows from an ordered set of flow records.
//
// The window pass runs once and is memoized; every query returns a fresh
// slice. Thread-safety: safe for concurrent use after New returns.
type Reconstructor[T record.Timestamp] struct {
	// sorted holds the records in ascending end order, ties in input order.
	sorted []record.FlowRecord[T]
	origin T
	count  int

	once    sync.Once
	windows []record.ResponseWindow[T]
}

// New creates a Reconstructor over records. The slice is copied; the caller
// keeps ownership of its input.
func New[T record.Timestamp](records []record.FlowRecord[T]) *Reconstructor[T] {
	origin, _ := record.MinStart(records)
	return &Reconstructor[T]{
		sorted: record.SortByEnd(records),
		origin: origin,
		count:  len(records),
	}
}

// Len returns the number of input records.
func (r *Reconstructor[T]) Len() int {
	return r.count
}

// anchor is the most recent fully resolved boundary. open marks the initial
// anchor whose end lies before every real timestamp.
type anchor[T record.Timestamp] struct {
	start T
	end   T
	open  bool
}

// drained reports whether x starts no earlier than the anchor's end.
func (a anchor[T]) drained(x record.FlowRecord[T]) bool {
	return a.open || x.Start >= a.end
}

func advance[T record.Timestamp](x record.FlowRecord[T]) anchor[T] {
	return anchor[T]{start: x.Start, end: x.End}
}

// walk visits sorted records with the anchor in effect before each one and
// whether the record passed the gap test.
func walk[T record.Timestamp](sorted []record.FlowRecord[T], origin T, visit func(i int, x record.FlowRecord[T], prev anchor[T], gap bool)) {
	a := anchor[T]{start: origin, open: true}
	for i, x := range sorted {
		gap := a.drained(x)
		visit(i, x, a, gap)
		if gap {
			a = advance(x)
		}
	}
}

func (r *Reconstructor[T]) pass() []record.ResponseWindow[T] {
	r.once.Do(func() {
		windows := []record.ResponseWindow[T]{}
		walk(r.sorted, r.origin, func(_ int, x record.FlowRecord[T], prev anchor[T], gap bool) {
			if gap && x.Start != prev.start {
				windows = append(windows, record.ResponseWindow[T]{
					StartMin: prev.start,
					StartMax: x.Start,
					End:      x.End,
				})
			}
		})
		r.windows = windows
	})
	return r.windows
}

// Windows returns the resolved response windows in ascending end order.
// Empty when no gap is ever observed.
func (r *Reconstructor[T]) Windows() []record.ResponseWindow[T] {
	return slices.Clone(r.pass())
}

// Records flattens every window into its (start_min, end) and
// (start_max, end) rows, in window order.
func (r *Reconstructor[T]) Records() []record.RecordPair[T] {
	windows := r.pass()
	pairs := make([]record.RecordPair[T], 0, 2*len(windows))
	for _, w := range windows {
		pairs = append(pairs, w.Pairs()...)
	}
	return pairs
}

// AllRecords enumerates plausible pairings for every input record, including
// those skipped by the gap test. It is a superset meant for inspection, not a
// minimal causal explanation.
//
// Each record contributes its own (start, end) pair plus (p, end), where p is
// the smaller of the anchor start in effect before the record and the minimum
// start among records not ending before it. Pairs are ordered by start, then
// end, with duplicates removed.
func (r *Reconstructor[T]) AllRecords() []record.RecordPair[T] {
	live := liveStarts(r.sorted)
	pairs := make([]record.RecordPair[T], 0, 2*len(r.sorted))
	walk(r.sorted, r.origin, func(i int, x record.FlowRecord[T], prev anchor[T], _ bool) {
		pairs = append(pairs, record.RecordPair[T]{Start: x.Start, End: x.End})
		if p := min(prev.start, live[i]); p != x.Start {
			pairs = append(pairs, record.RecordPair[T]{Start: p, End: x.End})
		}
	})
	slices.SortFunc(pairs, record.ComparePairs[T])
	return slices.Compact(pairs)
}

// liveStarts returns, per sorted record, the minimum start over all records
// whose end is not before its own.
func liveStarts[T record.Timestamp](sorted []record.FlowRecord[T]) []T {
	live := make([]T, len(sorted))
	for i := len(sorted) - 1; i >= 0; i-- {
		live[i] = sorted[i].Start
		if i+1 < len(sorted) {
			live[i] = min(live[i], live[i+1])
		}
	}
	// Equal ends are live for each other.
	for i := 1; i < len(sorted); i++ {
		if sorted[i].End == sorted[i-1].End {
			live[i] = live[i-1]
		}
	}
	return live
}
