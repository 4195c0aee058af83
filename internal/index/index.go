// Package index holds the precomputed embedding table and answers
// nearest-question lookups with a full cosine scan.
package index

import (
	"errors"
	"fmt"
	"math"
)

var ErrNoData = errors.New("similarity index is empty")

// Index is immutable after construction and safe for concurrent reads.
type Index struct {
	embeddings [][]float32
}

// New builds the index, asserting the positional invariant between the
// entry table and the embedding table.
func New(entryCount int, embeddings [][]float32) (*Index, error) {
	if len(embeddings) == 0 {
		return nil, ErrNoData
	}
	if len(embeddings) != entryCount {
		return nil, fmt.Errorf("embedding table has %d vectors for %d entries", len(embeddings), entryCount)
	}
	return &Index{embeddings: embeddings}, nil
}

// BestMatch returns the entry index with the highest cosine similarity
// to the query. Ties resolve to the lowest index.
func (ix *Index) BestMatch(query []float32) (int, float32, error) {
	if ix == nil || len(ix.embeddings) == 0 {
		return 0, 0, ErrNoData
	}

	best := 0
	bestScore := cosineSimilarity(query, ix.embeddings[0])
	for i := 1; i < len(ix.embeddings); i++ {
		if score := cosineSimilarity(query, ix.embeddings[i]); score > bestScore {
			best, bestScore = i, score
		}
	}
	return best, bestScore, nil
}

// Len reports the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.embeddings)
}

func cosineSimilarity(a, b []float32) float32 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}

	var dotProduct, normA, normB float64
	for i := range a {
		dotProduct += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return float32(dotProduct / (math.Sqrt(normA) * math.Sqrt(normB)))
}
