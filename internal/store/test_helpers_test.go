package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/respwin/internal/record"
)

// createTestStore creates a new store in a temporary directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// crossFlow is a record set whose equal-end handling depends on source order.
func crossFlow() []record.FlowRecord[int64] {
	return []record.FlowRecord[int64]{
		{Start: 0, End: 10},
		{Start: 3, End: 4},
		{Start: 4, End: 8},
		{Start: 6, End: 6},
	}
}
