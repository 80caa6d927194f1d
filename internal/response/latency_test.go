package response

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBestAndWorstCase(t *testing.T) {
	r := New([]fr{{0, 10}, {3, 4}, {4, 8}, {6, 6}})

	assert.Equal(t, []Latency[int64]{{End: 4, Latency: 1}, {End: 6, Latency: 0}}, r.BestCase())
	assert.Equal(t, []Latency[int64]{{End: 4, Latency: 4}, {End: 6, Latency: 3}}, r.WorstCase())
}

func TestBestAndWorstCase_Empty(t *testing.T) {
	r := New([]fr{{0, 1}})

	assert.Empty(t, r.BestCase())
	assert.NotNil(t, r.WorstCase())
}
