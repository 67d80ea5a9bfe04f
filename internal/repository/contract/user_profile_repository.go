package contract

import (
	"context"

	"medicine-chatbot-be/internal/entity"
)

type UserProfileRepository interface {
	FindByID(ctx context.Context, id string) (*entity.UserProfile, error)
}
