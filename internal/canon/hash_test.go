package canon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/respwin/internal/record"
)

func TestRecordSetDigest_Stable(t *testing.T) {
	records := []record.FlowRecord[int64]{{Start: 0, End: 1}, {Start: 2, End: 3}}

	a, err := RecordSetDigest(records)
	require.NoError(t, err)
	b, err := RecordSetDigest(append([]record.FlowRecord[int64](nil), records...))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestRecordSetDigest_OrderSensitive(t *testing.T) {
	a, err := RecordSetDigest([]record.FlowRecord[int64]{{Start: 0, End: 1}, {Start: 2, End: 3}})
	require.NoError(t, err)
	b, err := RecordSetDigest([]record.FlowRecord[int64]{{Start: 2, End: 3}, {Start: 0, End: 1}})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestRecordSetDigest_Empty(t *testing.T) {
	d, err := RecordSetDigest(nil)
	require.NoError(t, err)
	assert.Equal(t, hashWithDomain(DomainRecordSet, []byte(`{"records":[]}`)), d)
}
