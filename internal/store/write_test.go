package store

import (
	"context"
	"errors"
	"testing"

	"github.com/roach88/respwin/internal/record"
)

func TestWriteTrace_Created(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	trace, created, err := s.WriteTrace(ctx, "trace-1", "cross_flow", crossFlow())
	if err != nil {
		t.Fatalf("WriteTrace() failed: %v", err)
	}
	if !created {
		t.Error("created = false, want true")
	}
	if trace.ID != "trace-1" || trace.Name != "cross_flow" {
		t.Errorf("trace = %+v", trace)
	}
	if trace.RecordCount != 4 {
		t.Errorf("RecordCount = %d, want 4", trace.RecordCount)
	}
	if trace.Seq != 1 {
		t.Errorf("Seq = %d, want 1", trace.Seq)
	}
	if len(trace.Digest) != 64 {
		t.Errorf("Digest = %q, want 64 hex chars", trace.Digest)
	}
}

func TestWriteTrace_IdempotentByContent(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	first, _, err := s.WriteTrace(ctx, "trace-1", "a", crossFlow())
	if err != nil {
		t.Fatalf("first WriteTrace() failed: %v", err)
	}

	second, created, err := s.WriteTrace(ctx, "trace-2", "b", crossFlow())
	if err != nil {
		t.Fatalf("second WriteTrace() failed: %v", err)
	}
	if created {
		t.Error("created = true for duplicate content")
	}
	if second != first {
		t.Errorf("second = %+v, want existing %+v", second, first)
	}

	traces, err := s.ListTraces(ctx)
	if err != nil {
		t.Fatalf("ListTraces() failed: %v", err)
	}
	if len(traces) != 1 {
		t.Errorf("len(traces) = %d, want 1", len(traces))
	}
}

func TestWriteTrace_SeqIncreases(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"t1", "t2", "t3"} {
		records := []record.FlowRecord[int64]{{Start: int64(i), End: int64(i + 1)}}
		trace, _, err := s.WriteTrace(ctx, id, id, records)
		if err != nil {
			t.Fatalf("WriteTrace(%s) failed: %v", id, err)
		}
		if trace.Seq != int64(i+1) {
			t.Errorf("trace %s Seq = %d, want %d", id, trace.Seq, i+1)
		}
	}
}

func TestWriteTrace_DuplicateIDRollsBack(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, _, err := s.WriteTrace(ctx, "same", "a", crossFlow()); err != nil {
		t.Fatalf("WriteTrace() failed: %v", err)
	}
	other := []record.FlowRecord[int64]{{Start: 1, End: 2}}
	if _, _, err := s.WriteTrace(ctx, "same", "b", other); err == nil {
		t.Fatal("expected error for duplicate trace id")
	}

	var count int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM flow_records").Scan(&count); err != nil {
		t.Fatalf("count records: %v", err)
	}
	if count != 4 {
		t.Errorf("flow_records count = %d, want 4 (failed import must roll back)", count)
	}
}

func TestWriteTrace_Empty(t *testing.T) {
	s := createTestStore(t)

	trace, created, err := s.WriteTrace(context.Background(), "empty", "empty", nil)
	if err != nil {
		t.Fatalf("WriteTrace() failed: %v", err)
	}
	if !created || trace.RecordCount != 0 {
		t.Errorf("trace = %+v, created = %v", trace, created)
	}
}

func TestDeleteTrace(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	if _, _, err := s.WriteTrace(ctx, "trace-1", "a", crossFlow()); err != nil {
		t.Fatalf("WriteTrace() failed: %v", err)
	}
	if err := s.DeleteTrace(ctx, "trace-1"); err != nil {
		t.Fatalf("DeleteTrace() failed: %v", err)
	}

	records, err := s.ReadFlowRecords(ctx, "trace-1")
	if err != nil {
		t.Fatalf("ReadFlowRecords() failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("len(records) = %d after delete, want 0", len(records))
	}

	if err := s.DeleteTrace(ctx, "trace-1"); !errors.Is(err, ErrTraceNotFound) {
		t.Errorf("second DeleteTrace() error = %v, want ErrTraceNotFound", err)
	}
}
