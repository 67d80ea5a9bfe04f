package mapper

import (
	"testing"

	"github.com/pgvector/pgvector-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"medicine-chatbot-be/internal/model"
)

func TestDrugMapper_ToEntity_FlattensProducts(t *testing.T) {
	m := NewDrugMapper()
	e := m.ToEntity(&model.Drug{
		DrugbankId: "DB00945",
		Name:       "Acetylsalicylic acid",
		Products:   datatypes.JSONSlice[model.DrugProduct]{{Name: "Aspirin"}, {Name: ""}},
		DrugInteractions: datatypes.JSONSlice[model.DrugInteraction]{
			{DrugbankId: "DB00682", Name: "Warfarin", Description: "bleeding"},
		},
	})

	require.NotNil(t, e)
	assert.Equal(t, []string{"Aspirin"}, e.ProductNames)
	require.Len(t, e.Interactions, 1)
	assert.Equal(t, "DB00682", e.Interactions[0].DrugbankId)
	assert.Equal(t, "bleeding", e.Interactions[0].Description)

	assert.Nil(t, m.ToEntity(nil))
}

func TestDrugPassageMapper_ToEntity_StringifiesMetadata(t *testing.T) {
	m := NewDrugPassageMapper()
	e := m.ToEntity(&model.DrugPassage{
		Id:             "DB00945_description_0",
		Document:       "Aspirin is...",
		EmbeddingValue: pgvector.NewVector([]float32{0.1}),
		Metadata:       datatypes.JSONMap{"drugbank_id": "DB00945", "chunk": 0, "missing": nil},
	})

	require.NotNil(t, e)
	assert.Equal(t, "DB00945", e.DrugbankId())
	assert.Equal(t, "0", e.Metadata["chunk"])
	assert.NotContains(t, e.Metadata, "missing")
	assert.Equal(t, []float32{0.1}, e.EmbeddingValue)
}
