package intent

import (
	"context"
	"fmt"
	"strings"

	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/pkg/llm"
	"medicine-chatbot-be/pkg/rag"
)

const moduleName = "IntentClassifier"

type Label string

const (
	LabelInteraction Label = "INTERACTION"
	LabelGeneralInfo Label = "GENERAL_INFO"
	LabelOther       Label = "OTHER"
)

// interactionKeywords short-circuit the generator call.
var interactionKeywords = []string{
	"interact",
	"combine",
	"take with",
	"together",
	"contraindicated",
	"safe with",
}

// Classifier labels single-drug questions so general ones can skip interaction passages.
type Classifier struct {
	generator llm.LLMProvider
	logger    logger.ILogger
}

func NewClassifier(generator llm.LLMProvider, log logger.ILogger) *Classifier {
	return &Classifier{generator: generator, logger: log}
}

// Classify returns the label and, when the generator failed, the absorbed
// failure. A failed call defaults to GENERAL_INFO.
func (c *Classifier) Classify(ctx context.Context, question string) (Label, *rag.Failure) {
	if HasInteractionKeyword(question) {
		return LabelInteraction, nil
	}

	response, err := c.generator.Generate(ctx, fmt.Sprintf(constant.IntentClassificationPrompt, question))
	if err != nil {
		f := rag.Failure{Stage: moduleName, Kind: rag.FailureGenerator, Err: err}
		c.logger.Warn(moduleName, "Classification failed, defaulting to GENERAL_INFO", f.LogDetails())
		return LabelGeneralInfo, &f
	}

	label := ParseLabel(response)
	c.logger.Debug(moduleName, "Question classified", map[string]interface{}{
		"label":    string(label),
		"response": response,
	})
	return label, nil
}

func HasInteractionKeyword(question string) bool {
	q := strings.ToLower(question)
	for _, kw := range interactionKeywords {
		if strings.Contains(q, kw) {
			return true
		}
	}
	return false
}

// ParseLabel picks the first known label found in the response; INTERACTION wins ties.
func ParseLabel(response string) Label {
	r := strings.ToUpper(strings.TrimSpace(response))
	switch {
	case strings.Contains(r, string(LabelInteraction)):
		return LabelInteraction
	case strings.Contains(r, string(LabelGeneralInfo)):
		return LabelGeneralInfo
	default:
		return LabelOther
	}
}
