// Package canon produces RFC 8785 canonical JSON and content-addressed
// digests for record sets.
//
// Canonical bytes are used for two things: the digest that makes trace
// imports idempotent, and golden snapshots in the scenario harness. Both
// depend on byte-identical output for identical input, so floats and null
// are rejected and strings are NFC normalized.
package canon
