package testutil

import (
	"medicine-chatbot-be/internal/entity"
)

const (
	AspirinID   = "DB00945"
	WarfarinID  = "DB00682"
	IbuprofenID = "DB01050"
)

const AspirinWarfarinInteraction = "The risk or severity of bleeding can be increased when Acetylsalicylic acid is combined with Warfarin."

func Aspirin() *entity.Drug {
	return &entity.Drug{
		DrugbankId:   AspirinID,
		Name:         "Aspirin",
		Description:  "Aspirin is used to reduce fever and relieve mild to moderate pain.",
		Synonyms:     []string{"Acetylsalicylic acid", "ASA"},
		ProductNames: []string{"Bayer Aspirin"},
		Interactions: []entity.DrugInteraction{
			{DrugbankId: WarfarinID, Description: AspirinWarfarinInteraction},
		},
	}
}

func Warfarin() *entity.Drug {
	return &entity.Drug{
		DrugbankId:   WarfarinID,
		Name:         "Warfarin",
		Description:  "Warfarin is an anticoagulant.",
		Synonyms:     []string{"Coumadin"},
		ProductNames: []string{"Jantoven"},
	}
}

func Ibuprofen() *entity.Drug {
	return &entity.Drug{
		DrugbankId:   IbuprofenID,
		Name:         "Ibuprofen",
		Description:  "Ibuprofen is a nonsteroidal anti-inflammatory drug.",
		ProductNames: []string{"Advil", "Motrin"},
	}
}

// Passage builds an index entry for drugID tagged with section.
func Passage(id, drugID, section, text string, vec ...float32) *entity.Passage {
	meta := map[string]string{entity.MetaDrugbankId: drugID}
	if section != "" {
		meta[entity.MetaSection] = section
	}
	return &entity.Passage{Id: id, Document: text, Metadata: meta, EmbeddingValue: vec}
}
