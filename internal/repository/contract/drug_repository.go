package contract

import (
	"context"

	"medicine-chatbot-be/internal/entity"
)

type DrugRepository interface {
	// FindByNameOrSynonym returns the first drug whose name, product name or
	// synonym matches. A miss is (nil, nil).
	FindByNameOrSynonym(ctx context.Context, name string) (*entity.Drug, error)
	FindByID(ctx context.Context, drugbankId string) (*entity.Drug, error)
	Count(ctx context.Context) (int64, error)
}
