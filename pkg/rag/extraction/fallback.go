package extraction

import (
	"context"
	"regexp"
	"strings"

	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/pkg/rag"
)

// HistoryFallback recovers the drugs a conversation was last about.
type HistoryFallback interface {
	Recall(ctx context.Context, history string) ([]*entity.Drug, []rag.Failure)
}

var citationMarker = regexp.MustCompile(`(Primary Drug|Secondary Drug):\s*(.*?)\s*\(ID:\s*(DB\d+)\)`)

var historySanitizer = strings.NewReplacer(
	"*", "",
	"\n", " ",
	"\r", " ",
)

// CitationFallback reads the source citations appended to earlier answers.
type CitationFallback struct {
	drugs  contract.DrugRepository
	logger logger.ILogger
}

func NewCitationFallback(drugs contract.DrugRepository, log logger.ILogger) *CitationFallback {
	return &CitationFallback{drugs: drugs, logger: log}
}

// CitedIDs lists every citation marker's drug id, oldest first.
func CitedIDs(history string) []string {
	cleaned := historySanitizer.Replace(history)
	cleaned = strings.ReplaceAll(cleaned, constant.HistoryAIPrefix, "")
	cleaned = strings.ReplaceAll(cleaned, constant.HistoryUserPrefix, "")

	matches := citationMarker.FindAllStringSubmatch(cleaned, -1)
	ids := make([]string, len(matches))
	for i, m := range matches {
		ids[i] = m[3]
	}
	return ids
}

func (f *CitationFallback) Recall(ctx context.Context, history string) ([]*entity.Drug, []rag.Failure) {
	if strings.TrimSpace(history) == "" {
		return nil, nil
	}

	ids := CitedIDs(history)

	var failures []rag.Failure
	recalled := make([]*entity.Drug, 0, MaxDrugs)
	seen := make(map[string]struct{}, MaxDrugs)

	// newest first; prepend so the result keeps citation order
	for i := len(ids) - 1; i >= 0 && len(recalled) < MaxDrugs; i-- {
		id := ids[i]
		if _, dup := seen[id]; dup {
			continue
		}
		drug, err := f.drugs.FindByID(ctx, id)
		if err != nil {
			fail := rag.Failure{Stage: moduleName, Kind: rag.FailureRegistry, Err: err}
			f.logger.Warn(moduleName, "History drug lookup failed", fail.LogDetails())
			failures = append(failures, fail)
			continue
		}
		if drug == nil {
			continue
		}
		seen[id] = struct{}{}
		recalled = append([]*entity.Drug{drug}, recalled...)
	}
	return recalled, failures
}
