package memory

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/internal/repository/specification"
)

// PassageRepository is a brute-force cosine similarity index.
type PassageRepository struct {
	mu       sync.RWMutex
	passages []*entity.Passage
}

var _ contract.PassageRepository = &PassageRepository{}

func NewPassageRepository() *PassageRepository {
	return &PassageRepository{}
}

func (r *PassageRepository) CreateBulk(ctx context.Context, passages []*entity.Passage) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range passages {
		if p == nil || p.Id == "" {
			return errors.New("passage id required")
		}
		cp := *p
		r.passages = append(r.passages, &cp)
	}
	return nil
}

func (r *PassageRepository) SearchSimilar(ctx context.Context, embedding []float32, limit int, specs ...specification.Specification) ([]*entity.Passage, error) {
	if limit <= 0 {
		limit = 5
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	matches := make([]*entity.Passage, 0, len(r.passages))
	for _, p := range r.passages {
		if !specification.MatchesAll(p.Metadata, specs...) {
			continue
		}
		cp := *p
		cp.Similarity = cosineSimilarity(embedding, p.EmbeddingValue)
		matches = append(matches, &cp)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}

func (r *PassageRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, p := range r.passages {
		if specification.MatchesAll(p.Metadata, specs...) {
			n++
		}
	}
	return n, nil
}

func cosineSimilarity(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
