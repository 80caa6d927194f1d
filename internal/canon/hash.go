package canon

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/respwin/internal/record"
)

// Domain prefixes for content-addressed identity.
// The version suffix allows a future algorithm change.
const (
	DomainRecordSet = "respwin/records/v1"
)

// hashWithDomain computes SHA256(domain + 0x00 + data).
func hashWithDomain(domain string, data []byte) string {
	h := sha256.New()
	h.Write([]byte(domain))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil))
}

// RecordSetDigest computes the content-addressed identity of an ordered
// record set. Order matters: the same pairs in a different order are a
// different trace.
func RecordSetDigest(records []record.FlowRecord[int64]) (string, error) {
	data, err := Marshal(map[string]any{"records": RecordsValue(records)})
	if err != nil {
		return "", fmt.Errorf("RecordSetDigest: failed to marshal: %w", err)
	}
	return hashWithDomain(DomainRecordSet, data), nil
}

// RecordsValue converts records into the generic form Marshal accepts.
func RecordsValue(records []record.FlowRecord[int64]) []any {
	out := make([]any, len(records))
	for i, r := range records {
		out[i] = map[string]any{"start": r.Start, "end": r.End}
	}
	return out
}
