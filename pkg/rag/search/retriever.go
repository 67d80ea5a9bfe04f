package search

import (
	"context"
	"fmt"
	"strings"

	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/internal/repository/specification"
	"medicine-chatbot-be/pkg/embedding"
	"medicine-chatbot-be/pkg/rag"
)

const moduleName = "PassageRetriever"

// Config encapsulates retrieval parameters
type Config struct {
	TopK               int
	InteractionSection string
}

func DefaultConfig() Config {
	return Config{
		TopK:               5,
		InteractionSection: "drug_interactions",
	}
}

// Result holds the passages found for one drug.
type Result struct {
	Drug     *entity.Drug
	Passages []*entity.Passage
	Failure  *rag.Failure
}

// ContextBlock renders the passages between drug context markers, or "" when empty.
func (r Result) ContextBlock() string {
	if len(r.Passages) == 0 {
		return ""
	}
	docs := make([]string, len(r.Passages))
	for i, p := range r.Passages {
		docs[i] = p.Document
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "\n--- DRUG CONTEXT: %s (ID: %s) ---\n", r.Drug.Name, r.Drug.DrugbankId)
	sb.WriteString(strings.Join(docs, "\n---\n"))
	fmt.Fprintf(&sb, "\n--- END DRUG CONTEXT: %s ---\n", r.Drug.Name)
	return sb.String()
}

// SourceIDs returns the passage ids for citation.
func (r Result) SourceIDs() []string {
	ids := make([]string, len(r.Passages))
	for i, p := range r.Passages {
		ids[i] = p.Id
	}
	return ids
}

// Retriever runs a filtered nearest-neighbour search for one drug at a time.
type Retriever struct {
	embedder embedding.EmbeddingProvider
	passages contract.PassageRepository
	config   Config
	logger   logger.ILogger
}

func NewRetriever(embedder embedding.EmbeddingProvider, passages contract.PassageRepository, config Config, log logger.ILogger) *Retriever {
	if config.TopK <= 0 {
		config.TopK = DefaultConfig().TopK
	}
	if config.InteractionSection == "" {
		config.InteractionSection = DefaultConfig().InteractionSection
	}
	return &Retriever{
		embedder: embedder,
		passages: passages,
		config:   config,
		logger:   log,
	}
}

// Filters builds the metadata filter for a drug.
func (r *Retriever) Filters(drugbankId string, excludeInteractions bool) []specification.Specification {
	specs := []specification.Specification{
		specification.MetadataEq{Key: entity.MetaDrugbankId, Value: drugbankId},
	}
	if excludeInteractions {
		specs = append(specs, specification.MetadataNe{Key: entity.MetaSection, Value: r.config.InteractionSection})
	}
	return specs
}

// Retrieve never fails outright: embedder or index errors yield no passages
// and a Failure describing what went wrong.
func (r *Retriever) Retrieve(ctx context.Context, drug *entity.Drug, question string, excludeInteractions bool) Result {
	res := Result{Drug: drug}
	if drug == nil || drug.DrugbankId == "" {
		return res
	}

	emb, err := r.embedder.Generate(ctx, question, embedding.TaskRetrievalQuery)
	if err != nil {
		res.Failure = r.fail(rag.FailureEmbedder, drug, err)
		return res
	}

	passages, err := r.passages.SearchSimilar(ctx, emb.Embedding.Values, r.config.TopK, r.Filters(drug.DrugbankId, excludeInteractions)...)
	if err != nil {
		res.Failure = r.fail(rag.FailureIndex, drug, err)
		return res
	}

	res.Passages = passages
	r.logger.Debug(moduleName, "Passages retrieved", map[string]interface{}{
		"drugbank_id":          drug.DrugbankId,
		"count":                len(passages),
		"exclude_interactions": excludeInteractions,
	})
	return res
}

func (r *Retriever) fail(kind rag.FailureKind, drug *entity.Drug, err error) *rag.Failure {
	f := rag.Failure{Stage: moduleName, Kind: kind, Err: err}
	details := f.LogDetails()
	details["drugbank_id"] = drug.DrugbankId
	r.logger.Warn(moduleName, "Retrieval failed, continuing without passages", details)
	return &f
}
