// Package store provides SQLite-backed storage for imported flow-record sets.
//
// Each import creates a trace holding its records in source order:
//   - traces: one row per imported record set
//   - flow_records: (trace_id, seq, start_ts, end_ts), seq is the position
//     in the source
//
// # Critical Patterns
//
// Source order is the only order:
//   - Records are read back ORDER BY seq ASC
//   - The reconstructor breaks equal-end ties by this order, so it must be
//     reproduced exactly
//
// Content-addressed imports:
//   - traces.digest is UNIQUE and computed by canon.RecordSetDigest
//   - Importing an identical record set returns the existing trace
//
// Logical time:
//   - traces.seq is a monotonic import counter, never a wall-clock timestamp
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
