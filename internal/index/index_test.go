package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestMatchPicksHighestSimilarity(t *testing.T) {
	idx, err := New(3, [][]float32{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	})
	require.NoError(t, err)

	i, score, err := idx.BestMatch([]float32{0, 0.9, 0.1})
	require.NoError(t, err)
	assert.Equal(t, 1, i)
	assert.Greater(t, score, float32(0.9))
}

// Equal scores must resolve to the lowest index: first occurrence wins.
func TestBestMatchTieBreaksToLowestIndex(t *testing.T) {
	idx, err := New(3, [][]float32{
		{1, 0},
		{2, 0}, // same direction as index 0, identical cosine
		{0, 1},
	})
	require.NoError(t, err)

	i, score, err := idx.BestMatch([]float32{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, i)
	assert.InDelta(t, 1.0, float64(score), 1e-6)
}

func TestNewRejectsEmptyTable(t *testing.T) {
	_, err := New(0, nil)
	assert.ErrorIs(t, err, ErrNoData)
}

func TestNewRejectsSizeMismatch(t *testing.T) {
	_, err := New(2, [][]float32{{1, 0}})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoData)
}

func TestBestMatchNilIndex(t *testing.T) {
	var idx *Index
	_, _, err := idx.BestMatch([]float32{1, 0})
	assert.ErrorIs(t, err, ErrNoData)
}

func TestCosineSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a, b []float32
		want float64
	}{
		{"identical", []float32{1, 2, 3}, []float32{1, 2, 3}, 1},
		{"orthogonal", []float32{1, 0}, []float32{0, 1}, 0},
		{"opposite", []float32{1, 0}, []float32{-1, 0}, -1},
		{"dimension mismatch", []float32{1, 0}, []float32{1}, 0},
		{"zero vector", []float32{0, 0}, []float32{1, 0}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, float64(cosineSimilarity(tt.a, tt.b)), 1e-6)
		})
	}
}

func TestLen(t *testing.T) {
	idx, err := New(2, [][]float32{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.Equal(t, 2, idx.Len())
}
