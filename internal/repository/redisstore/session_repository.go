package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/pkg/store"

	"github.com/redis/go-redis/v9"
)

// SessionRepository stores each conversation as a JSON blob under prefix+userID
// with no TTL, so histories survive restarts.
type SessionRepository struct {
	rdb    redis.Cmdable
	prefix string
}

var _ contract.SessionRepository = &SessionRepository{}

func NewSessionRepository(rdb redis.Cmdable, prefix string) *SessionRepository {
	return &SessionRepository{rdb: rdb, prefix: prefix}
}

func (r *SessionRepository) key(userID string) string {
	return r.prefix + userID
}

func (r *SessionRepository) Get(ctx context.Context, userID string) (*store.Conversation, bool, error) {
	raw, err := r.rdb.Get(ctx, r.key(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read conversation: %w", err)
	}

	var conv store.Conversation
	if err := json.Unmarshal(raw, &conv); err != nil {
		return nil, false, fmt.Errorf("failed to decode conversation: %w", err)
	}
	return &conv, true, nil
}

func (r *SessionRepository) Save(ctx context.Context, conversation *store.Conversation) error {
	data, err := json.Marshal(conversation)
	if err != nil {
		return fmt.Errorf("failed to encode conversation: %w", err)
	}
	if err := r.rdb.Set(ctx, r.key(conversation.UserID), data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store conversation: %w", err)
	}
	return nil
}

func (r *SessionRepository) Delete(ctx context.Context, userID string) error {
	return r.rdb.Del(ctx, r.key(userID)).Err()
}
