// Package record defines the value types exchanged with the response-window
// reconstructor.
//
// A FlowRecord is one observed (start, end) pair. A ResponseWindow bounds the
// unknown causing start of an effect observed at End. A RecordPair is the flat
// (start, end) view consumed by latency statistics.
//
// All types are plain values and generic over Timestamp so the same code
// serves integer nanosecond traces and real-valued ones.
package record
