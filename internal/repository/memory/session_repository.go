package memory

import (
	"context"

	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/pkg/store"

	"github.com/patrickmn/go-cache"
)

type SessionRepository struct {
	cache *cache.Cache
}

var _ contract.SessionRepository = &SessionRepository{}

func NewSessionRepository() *SessionRepository {
	// Conversations live until reset or process exit.
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *SessionRepository) Save(ctx context.Context, conversation *store.Conversation) error {
	r.cache.Set(conversation.UserID, conversation.Clone(), cache.NoExpiration)
	return nil
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (*store.Conversation, bool, error) {
	if x, found := r.cache.Get(userID); found {
		return x.(*store.Conversation).Clone(), true, nil
	}
	return nil, false, nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	r.cache.Delete(userID)
	return nil
}
