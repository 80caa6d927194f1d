package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/respwin/internal/record"
)

// ErrTraceNotFound is returned when no trace matches the requested key.
var ErrTraceNotFound = errors.New("trace not found")

const traceColumns = `id, name, digest, record_count, seq`

// ReadFlowRecords returns the records of a trace in source order.
//
// Returns an empty slice (not nil) if the trace has no records.
func (s *Store) ReadFlowRecords(ctx context.Context, traceID string) ([]record.FlowRecord[int64], error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT start_ts, end_ts
		FROM flow_records
		WHERE trace_id = ?
		ORDER BY seq ASC
	`, traceID)
	if err != nil {
		return nil, fmt.Errorf("query flow records: %w", err)
	}
	defer rows.Close()

	records := []record.FlowRecord[int64]{}
	for rows.Next() {
		var r record.FlowRecord[int64]
		if err := rows.Scan(&r.Start, &r.End); err != nil {
			return nil, fmt.Errorf("scan flow record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate flow records: %w", err)
	}

	return records, nil
}

// ReadTrace looks a trace up by ID, falling back to the most recently
// imported trace with that name.
func (s *Store) ReadTrace(ctx context.Context, key string) (Trace, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+traceColumns+` FROM traces WHERE id = ?`, key)
	t, err := scanTrace(row)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, ErrTraceNotFound) {
		return Trace{}, err
	}

	row = s.db.QueryRowContext(ctx, `
		SELECT `+traceColumns+`
		FROM traces
		WHERE name = ?
		ORDER BY seq DESC
		LIMIT 1
	`, key)
	t, err = scanTrace(row)
	if err != nil {
		return Trace{}, fmt.Errorf("read trace %q: %w", key, err)
	}
	return t, nil
}

// ListTraces returns all traces in import order.
func (s *Store) ListTraces(ctx context.Context) ([]Trace, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+traceColumns+` FROM traces ORDER BY seq ASC`)
	if err != nil {
		return nil, fmt.Errorf("query traces: %w", err)
	}
	defer rows.Close()

	traces := []Trace{}
	for rows.Next() {
		var t Trace
		if err := rows.Scan(&t.ID, &t.Name, &t.Digest, &t.RecordCount, &t.Seq); err != nil {
			return nil, fmt.Errorf("scan trace: %w", err)
		}
		traces = append(traces, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate traces: %w", err)
	}
	return traces, nil
}

func (s *Store) readTraceByDigest(ctx context.Context, digest string) (Trace, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+traceColumns+` FROM traces WHERE digest = ?`, digest)
	return scanTrace(row)
}

func scanTrace(row *sql.Row) (Trace, error) {
	var t Trace
	err := row.Scan(&t.ID, &t.Name, &t.Digest, &t.RecordCount, &t.Seq)
	if errors.Is(err, sql.ErrNoRows) {
		return Trace{}, ErrTraceNotFound
	}
	if err != nil {
		return Trace{}, fmt.Errorf("scan trace: %w", err)
	}
	return t, nil
}
