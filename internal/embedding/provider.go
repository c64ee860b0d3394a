// Package embedding provides text embedding vectors and similarity math for
// semantic skill matching.
package embedding

import (
	"context"
	"math"
)

// Provider is an abstraction over embedding backends. Implementations must be
// deterministic for identical input text within a process lifetime.
type Provider interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)
	// EmbedBatch returns one vector per input text, in input order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)
	// Close releases any resources held by the provider.
	Close() error
}

// CosineSimilarity returns the cosine of the angle between two vectors, or 0
// when either vector is empty, mismatched in length, or zero-magnitude.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
