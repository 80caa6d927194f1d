package record

import (
	"cmp"
	"slices"
)

// Timestamp is the set of numeric types a trace may be expressed in.
type Timestamp interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// FlowRecord is one observed (start, end) pair. Start <= End is not required.
type FlowRecord[T Timestamp] struct {
	Start T `json:"start" yaml:"start"`
	End   T `json:"end" yaml:"end"`
}

// ResponseWindow states that the effect at End was caused by some start
// between StartMin and StartMax inclusive.
type ResponseWindow[T Timestamp] struct {
	StartMin T `json:"start_min" yaml:"start_min"`
	StartMax T `json:"start_max" yaml:"start_max"`
	End      T `json:"end" yaml:"end"`
}

// RecordPair is a flattened (start, end) row.
type RecordPair[T Timestamp] struct {
	Start T `json:"start" yaml:"start"`
	End   T `json:"end" yaml:"end"`
}

// Pairs flattens a window into (StartMin, End) and (StartMax, End),
// collapsing to one row when both starts coincide.
func (w ResponseWindow[T]) Pairs() []RecordPair[T] {
	if w.StartMin == w.StartMax {
		return []RecordPair[T]{{Start: w.StartMin, End: w.End}}
	}
	return []RecordPair[T]{
		{Start: w.StartMin, End: w.End},
		{Start: w.StartMax, End: w.End},
	}
}

// SortByEnd returns a copy of records in ascending End order.
// Records with equal End keep their input order.
func SortByEnd[T Timestamp](records []FlowRecord[T]) []FlowRecord[T] {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b FlowRecord[T]) int {
		return cmp.Compare(a.End, b.End)
	})
	return sorted
}

// MinStart returns the smallest Start in records. ok is false for empty input.
func MinStart[T Timestamp](records []FlowRecord[T]) (m T, ok bool) {
	for i, r := range records {
		if i == 0 || r.Start < m {
			m = r.Start
		}
	}
	return m, len(records) > 0
}

// ComparePairs orders pairs by Start, then End.
func ComparePairs[T Timestamp](a, b RecordPair[T]) int {
	if c := cmp.Compare(a.Start, b.Start); c != 0 {
		return c
	}
	return cmp.Compare(a.End, b.End)
}
