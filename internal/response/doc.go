// Package response reconstructs response times from (start, end) flow records
// whose causal pairing was never recorded.
//
// Flows may overlap, so an effect observed at end can have several plausible
// causes. The only invariant used is that causes never happen after their
// effects; payload identity is never inspected.
//
// ALGORITHM:
//
// Records are walked in ascending end order (ties keep input order) while a
// single anchor value tracks the most recent fully resolved boundary. The
// anchor starts at the minimum start of the whole set with an open end.
//
//  1. A record whose start is not before the anchor's end proves the previous
//     chain has drained. If its start differs from the anchor's start, the
//     window [anchor.start, record.start] is reported for record.end.
//     The anchor is then replaced by the record.
//  2. Any other record is still entangled with the open interval and is
//     skipped.
//
// The anchor is replaced, never mutated, so a pass is a pure function of the
// input and every call works on its own copy.
//
// Projections of the window sequence:
//   - Windows: the windows themselves
//   - Records: each window flattened to (start_min, end), (start_max, end)
//   - AllRecords: an over-inclusive diagnostic enumeration of pairings
//   - Histogram: distribution of every latency a window admits
//   - BestCase / WorstCase: one latency per window
package response
