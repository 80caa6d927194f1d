// Package harness runs conformance scenarios against the response-window
// reconstructor.
//
// A scenario is a YAML file holding an ordered record set and assertions on
// each projection:
//
//	name: double_flow
//	description: Two disjoint flows resolve into one window
//	bin_width: 1
//	records:
//	  - {start: 0, end: 1}
//	  - {start: 2, end: 3}
//	assertions:
//	  - type: windows
//	    windows: [{start_min: 0, start_max: 2, end: 3}]
//	  - type: histogram
//	    counts: [1, 2]
//	    edges: [1, 2, 3]
//
// Every run also produces a Snapshot of all projections. RunWithGolden
// compares its canonical JSON against testdata/golden/{name}.golden so that
// any behavior change shows up as a reviewable diff.
package harness
