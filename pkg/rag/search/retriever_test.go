package search

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/internal/repository/memory"
	"medicine-chatbot-be/internal/testutil"
	"medicine-chatbot-be/pkg/rag"
)

func seededIndex(t *testing.T) *memory.PassageRepository {
	t.Helper()
	repo := memory.NewPassageRepository()
	require.NoError(t, repo.CreateBulk(context.Background(), []*entity.Passage{
		testutil.Passage("DB00945_description_0", testutil.AspirinID, "description", "Aspirin relieves pain.", 1, 0),
		testutil.Passage("DB00945_drug_interactions_0", testutil.AspirinID, "drug_interactions", "Aspirin interacts with warfarin.", 1, 0),
		testutil.Passage("DB00945_indication_0", testutil.AspirinID, "indication", "Aspirin treats fever.", 0.9, 0.1),
		testutil.Passage("DB00682_description_0", testutil.WarfarinID, "description", "Warfarin thins blood.", 1, 0),
	}))
	return repo
}

func TestRetriever_ExcludeInteractions(t *testing.T) {
	r := NewRetriever(&testutil.FakeEmbedder{Vector: []float32{1, 0}}, seededIndex(t), DefaultConfig(), logger.NewNopLogger())

	res := r.Retrieve(context.Background(), testutil.Aspirin(), "What is aspirin used for?", true)

	require.Nil(t, res.Failure)
	require.NotEmpty(t, res.Passages)
	for _, p := range res.Passages {
		assert.NotEqual(t, "drug_interactions", p.Section())
		assert.Equal(t, testutil.AspirinID, p.DrugbankId())
	}
}

func TestRetriever_IncludeInteractions(t *testing.T) {
	r := NewRetriever(&testutil.FakeEmbedder{Vector: []float32{1, 0}}, seededIndex(t), DefaultConfig(), logger.NewNopLogger())

	res := r.Retrieve(context.Background(), testutil.Aspirin(), "aspirin and warfarin", false)

	assert.Contains(t, res.SourceIDs(), "DB00945_drug_interactions_0")
	assert.NotContains(t, res.SourceIDs(), "DB00682_description_0")
}

func TestRetriever_TopK(t *testing.T) {
	r := NewRetriever(&testutil.FakeEmbedder{Vector: []float32{1, 0}}, seededIndex(t), Config{TopK: 1}, logger.NewNopLogger())
	res := r.Retrieve(context.Background(), testutil.Aspirin(), "q", false)
	assert.Len(t, res.Passages, 1)
}

func TestRetriever_EmbedderFailure(t *testing.T) {
	r := NewRetriever(&testutil.FakeEmbedder{Err: errors.New("down")}, seededIndex(t), DefaultConfig(), logger.NewNopLogger())

	res := r.Retrieve(context.Background(), testutil.Aspirin(), "q", false)

	assert.Empty(t, res.Passages)
	require.NotNil(t, res.Failure)
	assert.Equal(t, rag.FailureEmbedder, res.Failure.Kind)
	assert.Empty(t, res.ContextBlock())
}

func TestResult_ContextBlock(t *testing.T) {
	res := Result{
		Drug: testutil.Aspirin(),
		Passages: []*entity.Passage{
			{Id: "a", Document: "first"},
			{Id: "b", Document: "second"},
		},
	}

	want := "\n--- DRUG CONTEXT: Aspirin (ID: DB00945) ---\nfirst\n---\nsecond\n--- END DRUG CONTEXT: Aspirin ---\n"
	assert.Equal(t, want, res.ContextBlock())
	assert.Equal(t, []string{"a", "b"}, res.SourceIDs())
}
