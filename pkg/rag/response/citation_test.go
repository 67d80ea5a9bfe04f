package response

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"medicine-chatbot-be/internal/testutil"
	"medicine-chatbot-be/pkg/rag/extraction"
)

func TestCitation_Block(t *testing.T) {
	c := NewCitation(testutil.Aspirin(), testutil.Warfarin())
	c.AddSource("DB00945_b", "Structured Interaction Data for Aspirin vs Warfarin", "DB00945_a", "DB00945_a", "")

	block := c.Block()

	assert.True(t, strings.HasPrefix(block, "\n\n"+strings.Repeat("-", 40)+"\n"))
	assert.Contains(t, block, "**Primary Drug:** Aspirin (ID: DB00945)")
	assert.Contains(t, block, "**Secondary Drug:** Warfarin (ID: DB00682)")
	assert.True(t, strings.HasSuffix(block,
		"- DB00945_a\n- DB00945_b\n- Structured Interaction Data for Aspirin vs Warfarin"))
	assert.Len(t, c.Sources(), 3)
}

func TestCitation_NoSecondaryWhenSameDrug(t *testing.T) {
	c := NewCitation(testutil.Aspirin(), testutil.Aspirin())
	c.AddSource("x")

	assert.NotContains(t, c.Block(), "Secondary Drug")
}

func TestCitation_EmptyWithoutSources(t *testing.T) {
	c := NewCitation(testutil.Aspirin(), nil)
	assert.Empty(t, c.Block())
}

func TestCitation_RoundTripsThroughHistoryFallback(t *testing.T) {
	c := NewCitation(testutil.Aspirin(), testutil.Warfarin())
	c.AddSource("DB00945_a")

	ids := extraction.CitedIDs("AI: answer" + c.Block())

	assert.Equal(t, []string{testutil.AspirinID, testutil.WarfarinID}, ids)
}
