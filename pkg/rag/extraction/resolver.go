package extraction

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/pkg/llm"
	"medicine-chatbot-be/pkg/rag"
)

const (
	moduleName = "EntityResolver"

	// MaxDrugs is the most distinct drugs a single question resolves to.
	MaxDrugs = 2

	nerTemperature      = 0.01
	defaultNERMaxTokens = 100
)

var vagueFollowUp = regexp.MustCompile(`\b(those\s+drugs|the\s+drugs|it|them|side\s+effects|both)\b`)

// IsVagueFollowUp reports whether the question leans on earlier turns for its subject.
func IsVagueFollowUp(question string) bool {
	return vagueFollowUp.MatchString(strings.ToLower(question))
}

// Result is the outcome of entity resolution for one question.
type Result struct {
	Drugs       []*entity.Drug
	Extracted   []string // raw names returned by the generator
	FromHistory bool
	Failures    []rag.Failure
}

// Resolver maps a question to at most two registry drugs.
type Resolver struct {
	generator llm.LLMProvider
	drugs     contract.DrugRepository
	fallback  HistoryFallback
	maxTokens int
	logger    logger.ILogger
}

func NewResolver(
	generator llm.LLMProvider,
	drugs contract.DrugRepository,
	fallback HistoryFallback,
	maxTokens int,
	log logger.ILogger,
) *Resolver {
	if maxTokens <= 0 {
		maxTokens = defaultNERMaxTokens
	}
	return &Resolver{
		generator: generator,
		drugs:     drugs,
		fallback:  fallback,
		maxTokens: maxTokens,
		logger:    log,
	}
}

// Resolve extracts drugs from the question and, when the question found none
// or is a vague follow-up with fewer than two, recovers them from history.
// A non-empty history result replaces the extraction.
func (r *Resolver) Resolve(ctx context.Context, question, history string) Result {
	var res Result

	names, failure := r.extractNames(ctx, question)
	if failure != nil {
		res.Failures = append(res.Failures, *failure)
	}
	res.Extracted = names
	res.Drugs, res.Failures = r.validate(ctx, names, res.Failures)

	vague := IsVagueFollowUp(question)
	if len(res.Drugs) == 0 || (vague && len(res.Drugs) < MaxDrugs) {
		if r.fallback != nil {
			recalled, failures := r.fallback.Recall(ctx, history)
			res.Failures = append(res.Failures, failures...)
			if len(recalled) > 0 {
				r.logger.Debug(moduleName, "Using drugs recalled from history", map[string]interface{}{
					"count": len(recalled),
					"vague": vague,
				})
				res.Drugs = recalled
				res.FromHistory = true
			}
		}
	}

	r.logger.Info(moduleName, "Entities resolved", map[string]interface{}{
		"extracted":    names,
		"resolved":     drugNames(res.Drugs),
		"from_history": res.FromHistory,
	})
	return res
}

func (r *Resolver) extractNames(ctx context.Context, question string) ([]string, *rag.Failure) {
	prompt := fmt.Sprintf(constant.DrugExtractionPrompt, question)
	response, err := r.generator.Generate(ctx, prompt,
		llm.WithTemperature(nerTemperature),
		llm.WithMaxTokens(r.maxTokens),
	)
	if err != nil {
		f := rag.Failure{Stage: moduleName, Kind: rag.FailureGenerator, Err: err}
		r.logger.Warn(moduleName, "Drug extraction failed, continuing with no drugs", f.LogDetails())
		return nil, &f
	}
	return ParseExtraction(response), nil
}

// ParseExtraction splits the generator's comma list. NONE means no drugs.
func ParseExtraction(response string) []string {
	response = strings.TrimSpace(response)
	if response == "" || strings.EqualFold(response, "NONE") {
		return nil
	}
	var names []string
	for _, part := range strings.Split(response, ",") {
		if name := strings.TrimSpace(part); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func (r *Resolver) validate(ctx context.Context, names []string, failures []rag.Failure) ([]*entity.Drug, []rag.Failure) {
	found := make([]*entity.Drug, 0, MaxDrugs)
	seen := make(map[string]struct{}, MaxDrugs)

	for _, name := range names {
		drug, err := r.drugs.FindByNameOrSynonym(ctx, name)
		if err != nil {
			f := rag.Failure{Stage: moduleName, Kind: rag.FailureRegistry, Err: err}
			r.logger.Warn(moduleName, "Drug lookup failed", f.LogDetails())
			failures = append(failures, f)
			continue
		}
		// records without an id cannot be filtered in the passage index
		if drug == nil || drug.DrugbankId == "" {
			continue
		}
		if _, dup := seen[drug.DrugbankId]; dup {
			continue
		}
		seen[drug.DrugbankId] = struct{}{}
		found = append(found, drug)
		if len(found) >= MaxDrugs {
			break
		}
	}
	return found, failures
}

func drugNames(drugs []*entity.Drug) []string {
	names := make([]string, len(drugs))
	for i, d := range drugs {
		names[i] = d.Name
	}
	return names
}
