package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/respwin/internal/canon"
	"github.com/roach88/respwin/internal/record"
)

// Trace describes one imported record set.
type Trace struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Digest      string `json:"digest"`
	RecordCount int    `json:"record_count"`
	Seq         int64  `json:"seq"`
}

// WriteTrace stores records under a new trace in one transaction.
//
// The digest of records identifies the trace content. If a trace with the
// same digest exists it is returned unchanged with created == false; id and
// name are ignored in that case.
func (s *Store) WriteTrace(ctx context.Context, id, name string, records []record.FlowRecord[int64]) (trace Trace, created bool, err error) {
	digest, err := canon.RecordSetDigest(records)
	if err != nil {
		return Trace{}, false, fmt.Errorf("write trace: %w", err)
	}

	existing, err := s.readTraceByDigest(ctx, digest)
	if err == nil {
		s.logger.Debug("trace exists", "trace", existing.ID, "digest", digest)
		return existing, false, nil
	}
	if !errors.Is(err, ErrTraceNotFound) {
		return Trace{}, false, fmt.Errorf("write trace: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Trace{}, false, fmt.Errorf("write trace: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	var seq int64
	if err = tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) + 1 FROM traces`).Scan(&seq); err != nil {
		return Trace{}, false, fmt.Errorf("write trace: next seq: %w", err)
	}

	trace = Trace{
		ID:          id,
		Name:        name,
		Digest:      digest,
		RecordCount: len(records),
		Seq:         seq,
	}
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO traces (id, name, digest, record_count, seq)
		VALUES (?, ?, ?, ?, ?)
	`, trace.ID, trace.Name, trace.Digest, trace.RecordCount, trace.Seq); err != nil {
		return Trace{}, false, fmt.Errorf("write trace: %w", err)
	}

	if err = insertRecords(ctx, tx, id, records); err != nil {
		return Trace{}, false, fmt.Errorf("write trace: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return Trace{}, false, fmt.Errorf("write trace: commit: %w", err)
	}
	s.logger.Debug("trace written", "trace", trace.ID, "seq", trace.Seq, "records", trace.RecordCount)
	return trace, true, nil
}

func insertRecords(ctx context.Context, tx *sql.Tx, traceID string, records []record.FlowRecord[int64]) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO flow_records (trace_id, seq, start_ts, end_ts)
		VALUES (?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare records: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, traceID, i, r.Start, r.End); err != nil {
			return fmt.Errorf("insert record %d: %w", i, err)
		}
	}
	return nil
}

// DeleteTrace removes a trace and its records. Deleting an unknown trace
// returns ErrTraceNotFound.
func (s *Store) DeleteTrace(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM traces WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete trace: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete trace: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("delete trace %q: %w", id, ErrTraceNotFound)
	}
	return nil
}
