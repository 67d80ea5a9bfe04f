package memory

import (
	"context"
	"sync"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/repository/contract"
)

type UserProfileRepository struct {
	mu       sync.RWMutex
	profiles map[string]*entity.UserProfile
}

var _ contract.UserProfileRepository = &UserProfileRepository{}

func NewUserProfileRepository(profiles ...*entity.UserProfile) *UserProfileRepository {
	r := &UserProfileRepository{profiles: make(map[string]*entity.UserProfile)}
	for _, p := range profiles {
		r.profiles[p.Id] = p
	}
	return r
}

func (r *UserProfileRepository) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.profiles[id], nil
}
