package memory

import (
	"context"
	"sync"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/repository/contract"
)

// DrugRepository keeps drugs in insertion order so "first match" is deterministic.
type DrugRepository struct {
	mu    sync.RWMutex
	drugs []*entity.Drug
}

var _ contract.DrugRepository = &DrugRepository{}

func NewDrugRepository(drugs ...*entity.Drug) *DrugRepository {
	return &DrugRepository{drugs: drugs}
}

func (r *DrugRepository) FindByNameOrSynonym(ctx context.Context, name string) (*entity.Drug, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.drugs {
		if d.MatchesName(name) {
			return d, nil
		}
	}
	return nil, nil
}

func (r *DrugRepository) FindByID(ctx context.Context, drugbankId string) (*entity.Drug, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, d := range r.drugs {
		if d.DrugbankId == drugbankId {
			return d, nil
		}
	}
	return nil, nil
}

func (r *DrugRepository) Count(ctx context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.drugs)), nil
}
