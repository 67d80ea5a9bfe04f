package contract

import (
	"context"

	"medicine-chatbot-be/pkg/store"
)

// SessionRepository persists conversations per user id. Entries never expire.
type SessionRepository interface {
	Get(ctx context.Context, userID string) (*store.Conversation, bool, error)
	Save(ctx context.Context, conversation *store.Conversation) error
	Delete(ctx context.Context, userID string) error
}
