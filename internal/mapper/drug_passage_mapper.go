package mapper

import (
	"fmt"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/model"
)

type DrugPassageMapper struct{}

func NewDrugPassageMapper() *DrugPassageMapper {
	return &DrugPassageMapper{}
}

func (m *DrugPassageMapper) ToEntity(p *model.DrugPassage) *entity.Passage {
	if p == nil {
		return nil
	}

	meta := make(map[string]string, len(p.Metadata))
	for k, v := range p.Metadata {
		if v == nil {
			continue
		}
		meta[k] = fmt.Sprint(v)
	}

	return &entity.Passage{
		Id:             p.Id,
		Document:       p.Document,
		Metadata:       meta,
		EmbeddingValue: p.EmbeddingValue.Slice(),
	}
}
