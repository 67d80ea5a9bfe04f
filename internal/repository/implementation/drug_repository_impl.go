package implementation

import (
	"context"
	"errors"
	"strings"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/mapper"
	"medicine-chatbot-be/internal/model"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/internal/repository/specification"

	"gorm.io/gorm"
)

type DrugRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DrugMapper
}

func NewDrugRepository(db *gorm.DB) contract.DrugRepository {
	return &DrugRepositoryImpl{
		db:     db,
		mapper: mapper.NewDrugMapper(),
	}
}

func (r *DrugRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DrugRepositoryImpl) findOne(ctx context.Context, specs ...specification.Specification) (*entity.Drug, error) {
	var m model.Drug
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *DrugRepositoryImpl) FindByNameOrSynonym(ctx context.Context, name string) (*entity.Drug, error) {
	if strings.TrimSpace(name) == "" {
		return nil, nil
	}
	return r.findOne(ctx, specification.DrugNameOrSynonym{Name: name})
}

func (r *DrugRepositoryImpl) FindByID(ctx context.Context, drugbankId string) (*entity.Drug, error) {
	if drugbankId == "" {
		return nil, nil
	}
	return r.findOne(ctx, specification.ByDrugbankID{DrugbankID: drugbankId})
}

func (r *DrugRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Drug{}).Count(&count).Error
	return count, err
}
