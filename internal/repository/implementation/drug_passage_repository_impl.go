package implementation

import (
	"context"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/mapper"
	"medicine-chatbot-be/internal/model"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DrugPassageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DrugPassageMapper
}

func NewDrugPassageRepository(db *gorm.DB) contract.PassageRepository {
	return &DrugPassageRepositoryImpl{
		db:     db,
		mapper: mapper.NewDrugPassageMapper(),
	}
}

func (r *DrugPassageRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *DrugPassageRepositoryImpl) SearchSimilar(ctx context.Context, embedding []float32, limit int, specs ...specification.Specification) ([]*entity.Passage, error) {
	if limit <= 0 {
		limit = 5
	}

	// cosine similarity = 1 - cosine distance
	type result struct {
		model.DrugPassage
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	query := r.db.WithContext(ctx).
		Table(model.DrugPassage{}.TableName()).
		Select("drug_passages.*, 1 - (embedding_value <=> ?) as similarity", queryVector)
	query = r.applySpecifications(query, specs...)

	// order by raw distance so the hnsw index applies
	err := query.
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:                "embedding_value <=> ?",
			Vars:               []interface{}{queryVector},
			WithoutParentheses: true,
		}}).
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	passages := make([]*entity.Passage, len(results))
	for i, res := range results {
		p := r.mapper.ToEntity(&res.DrugPassage)
		p.Similarity = res.Similarity
		passages[i] = p
	}
	return passages, nil
}

func (r *DrugPassageRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.DrugPassage{}), specs...)
	err := query.Count(&count).Error
	return count, err
}
