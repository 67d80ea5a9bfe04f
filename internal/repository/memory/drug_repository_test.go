package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicine-chatbot-be/internal/entity"
)

func TestDrugRepository_FirstMatchWins(t *testing.T) {
	ctx := context.Background()
	repo := NewDrugRepository(
		&entity.Drug{DrugbankId: "DB1", Name: "Alpha", Synonyms: []string{"shared name"}},
		&entity.Drug{DrugbankId: "DB2", Name: "Beta", Synonyms: []string{"shared name"}},
	)

	d, err := repo.FindByNameOrSynonym(ctx, "shared")
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "DB1", d.DrugbankId)

	d, err = repo.FindByNameOrSynonym(ctx, "gamma")
	require.NoError(t, err)
	assert.Nil(t, d)

	d, err = repo.FindByID(ctx, "DB2")
	require.NoError(t, err)
	assert.Equal(t, "Beta", d.Name)
}
