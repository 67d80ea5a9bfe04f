package contract

import (
	"context"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/repository/specification"
)

type PassageRepository interface {
	// SearchSimilar returns up to limit passages nearest to embedding among
	// those satisfying every spec, most similar first.
	SearchSimilar(ctx context.Context, embedding []float32, limit int, specs ...specification.Specification) ([]*entity.Passage, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
