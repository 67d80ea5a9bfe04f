package implementation

import (
	"context"
	"errors"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/mapper"
	"medicine-chatbot-be/internal/model"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserProfileMapper
}

func NewUserProfileRepository(db *gorm.DB) contract.UserProfileRepository {
	return &UserProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserProfileMapper(),
	}
}

func (r *UserProfileRepositoryImpl) FindByID(ctx context.Context, id string) (*entity.UserProfile, error) {
	var m model.UserProfile
	query := specification.ByID{ID: id}.Apply(r.db.WithContext(ctx))
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
