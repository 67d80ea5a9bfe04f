package extraction

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

const nerMarker = "Extracted Drug Names"

func newResolver(gen *testutil.FakeGenerator, drugs ...*entity.Drug) *Resolver {
	repo := memory.NewDrugRepository(drugs...)
	log := logger.NewNopLogger()
	return NewResolver(gen, repo, NewCitationFallback(repo, log), 100, log)
}

func ids(drugs []*entity.Drug) []string {
	out := make([]string, len(drugs))
	for i, d := range drugs {
		out[i] = d.DrugbankId
	}
	return out
}

func TestParseExtraction(t *testing.T) {
	tests := []struct {
		name     string
		response string
		want     []string
	}{
		{"none", "NONE", nil},
		{"none lowercase padded", "  none \n", nil},
		{"empty", "", nil},
		{"single", "Aspirin", []string{"Aspirin"}},
		{"pair with spaces", " Aspirin ,  Warfarin ", []string{"Aspirin", "Warfarin"}},
		{"drops blanks", "Aspirin,,", []string{"Aspirin"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseExtraction(tt.response))
		})
	}
}

func TestIsVagueFollowUp(t *testing.T) {
	assert.True(t, IsVagueFollowUp("What about THOSE drugs?"))
	assert.True(t, IsVagueFollowUp("Is it safe?"))
	assert.True(t, IsVagueFollowUp("any side effects"))
	assert.False(t, IsVagueFollowUp("What is Aspirin used for?"))
	assert.False(t, IsVagueFollowUp("Tell me about italics"), "word boundary")
}

func TestResolver_TwoDrugsJoinedByAnd(t *testing.T) {
	gen := testutil.NewFakeGenerator().On(nerMarker, "Aspirin, Warfarin")
	r := newResolver(gen, testutil.Aspirin(), testutil.Warfarin())

	res := r.Resolve(context.Background(), "Can I take Aspirin and Warfarin?", "")

	assert.Equal(t, []string{testutil.AspirinID, testutil.WarfarinID}, ids(res.Drugs))
	assert.False(t, res.FromHistory)
	assert.Empty(t, res.Failures)

	require.Len(t, gen.Options, 1)
	assert.InDelta(t, 0.01, gen.Options[0].Temperature, 1e-9)
	assert.Equal(t, 100, gen.Options[0].MaxTokens)
}

func TestResolver_DeduplicatesAndCapsAtTwo(t *testing.T) {
	gen := testutil.NewFakeGenerator().On(nerMarker, "Aspirin, ASA, Warfarin, Ibuprofen")
	r := newResolver(gen, testutil.Aspirin(), testutil.Warfarin(), testutil.Ibuprofen())

	res := r.Resolve(context.Background(), "aspirin asa warfarin ibuprofen", "")

	assert.Equal(t, []string{testutil.AspirinID, testutil.WarfarinID}, ids(res.Drugs))
}

func TestResolver_UnknownNamesSkipped(t *testing.T) {
	gen := testutil.NewFakeGenerator().On(nerMarker, "Zorblax")
	r := newResolver(gen, testutil.Aspirin())

	res := r.Resolve(context.Background(), "What is Zorblax?", "")

	assert.Empty(t, res.Drugs)
	assert.Equal(t, []string{"Zorblax"}, res.Extracted)
}

func TestResolver_RecordsWithoutIDSkipped(t *testing.T) {
	gen := testutil.NewFakeGenerator().On(nerMarker, "Mystery, Aspirin")
	r := newResolver(gen, &entity.Drug{Name: "Mystery"}, testutil.Aspirin())

	res := r.Resolve(context.Background(), "Mystery and Aspirin", "")

	assert.Equal(t, []string{testutil.AspirinID}, ids(res.Drugs))
}

func TestResolver_GeneratorFailureYieldsNoDrugs(t *testing.T) {
	gen := testutil.NewFakeGenerator().Fail(nerMarker, errors.New("connection refused"))
	r := newResolver(gen, testutil.Aspirin())

	res := r.Resolve(context.Background(), "What is Aspirin?", "")

	assert.Empty(t, res.Drugs)
	require.Len(t, res.Failures, 1)
	assert.Equal(t, rag.FailureGenerator, res.Failures[0].Kind)
}

const citedHistory = "User: Can I take Aspirin with Warfarin?\n" +
	"AI: Do not combine them.\n\n----------------------------------------\n" +
	"✨ **Sources from Local DrugBank Database** ✨\n" +
	"**Primary Drug:** Aspirin (ID: DB00945)\n" +
	"**Secondary Drug:** Warfarin (ID: DB00682)\n" +
	"Relevant Data Chunks Used (Vector ID or Interaction Source):\n" +
	"- Structured Interaction Data for Aspirin vs Warfarin"

func TestResolver_HistoryFallback(t *testing.T) {
	t.Run("no drugs in question uses citations", func(t *testing.T) {
		gen := testutil.NewFakeGenerator().On(nerMarker, "NONE")
		r := newResolver(gen, testutil.Aspirin(), testutil.Warfarin())

		res := r.Resolve(context.Background(), "What are the risks?", citedHistory)

		assert.True(t, res.FromHistory)
		assert.Equal(t, []string{testutil.AspirinID, testutil.WarfarinID}, ids(res.Drugs))
	})

	t.Run("vague follow-up with one drug replaces extraction", func(t *testing.T) {
		gen := testutil.NewFakeGenerator().On(nerMarker, "Ibuprofen")
		r := newResolver(gen, testutil.Aspirin(), testutil.Warfarin(), testutil.Ibuprofen())

		res := r.Resolve(context.Background(), "Does Ibuprofen work like them?", citedHistory)

		assert.True(t, res.FromHistory)
		assert.Equal(t, []string{testutil.AspirinID, testutil.WarfarinID}, ids(res.Drugs))
	})

	t.Run("single drug, not vague, history ignored", func(t *testing.T) {
		gen := testutil.NewFakeGenerator().On(nerMarker, "Ibuprofen")
		r := newResolver(gen, testutil.Aspirin(), testutil.Warfarin(), testutil.Ibuprofen())

		res := r.Resolve(context.Background(), "What is Ibuprofen used for?", citedHistory)

		assert.False(t, res.FromHistory)
		assert.Equal(t, []string{testutil.IbuprofenID}, ids(res.Drugs))
	})

	t.Run("empty fallback keeps extraction", func(t *testing.T) {
		gen := testutil.NewFakeGenerator().On(nerMarker, "Ibuprofen")
		r := newResolver(gen, testutil.Ibuprofen())

		res := r.Resolve(context.Background(), "Is it safe?", "User: hi\nAI: hello")

		assert.False(t, res.FromHistory)
		assert.Equal(t, []string{testutil.IbuprofenID}, ids(res.Drugs))
	})
}

func TestCitationFallback_MostRecentTwoInCitationOrder(t *testing.T) {
	repo := memory.NewDrugRepository(testutil.Aspirin(), testutil.Warfarin(), testutil.Ibuprofen())
	f := NewCitationFallback(repo, logger.NewNopLogger())

	history := citedHistory + "\nUser: and ibuprofen?\nAI: ok\n" +
		"**Primary Drug:** Ibuprofen (ID: DB01050)\n"

	drugs, failures := f.Recall(context.Background(), history)

	assert.Empty(t, failures)
	assert.Equal(t, []string{testutil.WarfarinID, testutil.IbuprofenID}, ids(drugs))
}

func TestCitationFallback_UnknownIDSkipped(t *testing.T) {
	repo := memory.NewDrugRepository(testutil.Aspirin())
	f := NewCitationFallback(repo, logger.NewNopLogger())

	drugs, _ := f.Recall(context.Background(), "Primary Drug: Aspirin (ID: DB00945) Secondary Drug: Gone (ID: DB99999)")

	assert.Equal(t, []string{testutil.AspirinID}, ids(drugs))
}
