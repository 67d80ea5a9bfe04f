package intent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/internal/testutil"
)

const classifyMarker = "Question to classify"

func TestParseLabel(t *testing.T) {
	tests := []struct {
		response string
		want     Label
	}{
		{"INTERACTION", LabelInteraction},
		{"  general_info\n", LabelGeneralInfo},
		{"**GENERAL_INFO**", LabelGeneralInfo},
		{"OTHER", LabelOther},
		{"I am not sure", LabelOther},
		{"GENERAL_INFO or INTERACTION", LabelInteraction},
	}
	for _, tt := range tests {
		t.Run(tt.response, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLabel(tt.response))
		})
	}
}

func TestClassifier_KeywordFastPath(t *testing.T) {
	gen := testutil.NewFakeGenerator()
	c := NewClassifier(gen, logger.NewNopLogger())

	for _, q := range []string{
		"Does aspirin interact with food?",
		"Can I COMBINE aspirin and alcohol?",
		"Is aspirin safe with my heart condition?",
	} {
		label, failure := c.Classify(context.Background(), q)
		assert.Equal(t, LabelInteraction, label, q)
		assert.Nil(t, failure)
	}
	assert.Empty(t, gen.Prompts, "keyword path must not call the generator")
}

func TestClassifier_UsesGenerator(t *testing.T) {
	gen := testutil.NewFakeGenerator().On(classifyMarker, "GENERAL_INFO")
	c := NewClassifier(gen, logger.NewNopLogger())

	label, failure := c.Classify(context.Background(), "What is Aspirin used for?")

	assert.Equal(t, LabelGeneralInfo, label)
	assert.Nil(t, failure)
	require.Len(t, gen.Prompts, 1)
	assert.Contains(t, gen.Prompts[0], `"What is Aspirin used for?"`)
}

func TestClassifier_GeneratorFailureDefaultsToGeneralInfo(t *testing.T) {
	gen := testutil.NewFakeGenerator().Fail(classifyMarker, errors.New("timeout"))
	c := NewClassifier(gen, logger.NewNopLogger())

	label, failure := c.Classify(context.Background(), "What is Aspirin used for?")

	assert.Equal(t, LabelGeneralInfo, label)
	require.NotNil(t, failure)
}
