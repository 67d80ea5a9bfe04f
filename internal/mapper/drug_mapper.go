package mapper

import (
	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/model"
)

type DrugMapper struct{}

func NewDrugMapper() *DrugMapper {
	return &DrugMapper{}
}

func (m *DrugMapper) ToEntity(d *model.Drug) *entity.Drug {
	if d == nil {
		return nil
	}

	products := make([]string, 0, len(d.Products))
	for _, p := range d.Products {
		if p.Name != "" {
			products = append(products, p.Name)
		}
	}

	interactions := make([]entity.DrugInteraction, len(d.DrugInteractions))
	for i, in := range d.DrugInteractions {
		interactions[i] = entity.DrugInteraction{
			DrugbankId:  in.DrugbankId,
			Description: in.Description,
		}
	}

	return &entity.Drug{
		DrugbankId:       d.DrugbankId,
		Name:             d.Name,
		Description:      d.Description,
		Synonyms:         append([]string(nil), d.Synonyms...),
		ProductNames:     products,
		Interactions:     interactions,
		FoodInteractions: append([]string(nil), d.FoodInteractions...),
		Targets:          append([]string(nil), d.Targets...),
	}
}
