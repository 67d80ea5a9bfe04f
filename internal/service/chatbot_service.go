package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"medicine-chatbot-be/internal/constant"
	"medicine-chatbot-be/internal/dto"
	"medicine-chatbot-be/internal/entity"
	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/internal/repository/memory"
	"medicine-chatbot-be/pkg/embedding"
	"medicine-chatbot-be/pkg/events"
	"medicine-chatbot-be/pkg/llm"
	"medicine-chatbot-be/pkg/rag"
	"medicine-chatbot-be/pkg/rag/extraction"
	"medicine-chatbot-be/pkg/rag/intent"
	"medicine-chatbot-be/pkg/rag/interaction"
	"medicine-chatbot-be/pkg/rag/prompt"
	"medicine-chatbot-be/pkg/rag/response"
	"medicine-chatbot-be/pkg/rag/search"
	"medicine-chatbot-be/pkg/rag/session"
)

const chatbotModule = "Chatbot"

// Branches reported in chat events and logs.
const (
	BranchInvalid       = "invalid"
	BranchUnavailable   = "unavailable"
	BranchReset         = "reset"
	BranchProfile       = "profile_query"
	BranchGeneral       = "general_chat"
	BranchNoInformation = "no_information"
	BranchAnswered      = "answered"
)

// IChatbotService answers one question for one user.
type IChatbotService interface {
	Handle(ctx context.Context, question, userID string) (string, int)
	Reset(ctx context.Context, userID string) (string, int)
	Health(ctx context.Context) *dto.HealthResponse
}

// ChatbotCollaborators groups the external systems the pipeline talks to.
// Generator, Embedder and Drugs are required; the rest may be nil.
type ChatbotCollaborators struct {
	Generator llm.LLMProvider
	Embedder  embedding.EmbeddingProvider
	Drugs     contract.DrugRepository
	Passages  contract.PassageRepository
	Profiles  contract.UserProfileRepository
	Sessions  contract.SessionRepository
}

type ChatbotConfig struct {
	TopK               int
	InteractionSection string
	NERMaxTokens       int
}

type chatbotService struct {
	generator llm.LLMProvider
	drugs     contract.DrugRepository
	passages  contract.PassageRepository
	profiles  contract.UserProfileRepository
	available bool

	sessions     *session.Manager
	entities     *extraction.Resolver
	classifier   *intent.Classifier
	interactions *interaction.Resolver
	retriever    *search.Retriever

	publisher IPublisherService
	logger    logger.ILogger
}

func NewChatbotService(
	collab ChatbotCollaborators,
	cfg ChatbotConfig,
	publisher IPublisherService,
	log logger.ILogger,
) IChatbotService {
	if collab.Sessions == nil {
		collab.Sessions = memory.NewSessionRepository()
	}
	s := &chatbotService{
		generator: collab.Generator,
		drugs:     collab.Drugs,
		passages:  collab.Passages,
		profiles:  collab.Profiles,
		available: collab.Generator != nil && collab.Embedder != nil && collab.Drugs != nil && collab.Passages != nil,
		sessions:  session.NewManager(collab.Sessions, log),
		publisher: publisher,
		logger:    log,
	}
	if !s.available {
		log.Error(chatbotModule, "Chat components unavailable", map[string]interface{}{
			"generator": collab.Generator != nil,
			"embedder":  collab.Embedder != nil,
			"registry":  collab.Drugs != nil,
			"index":     collab.Passages != nil,
		})
		return s
	}

	s.entities = extraction.NewResolver(
		collab.Generator,
		collab.Drugs,
		extraction.NewCitationFallback(collab.Drugs, log),
		cfg.NERMaxTokens,
		log,
	)
	s.classifier = intent.NewClassifier(collab.Generator, log)
	s.interactions = interaction.NewResolver(collab.Drugs, log)
	s.retriever = search.NewRetriever(collab.Embedder, collab.Passages, search.Config{
		TopK:               cfg.TopK,
		InteractionSection: cfg.InteractionSection,
	}, log)
	return s
}

// Health reports availability and the size of the registry and index.
func (s *chatbotService) Health(ctx context.Context) *dto.HealthResponse {
	res := &dto.HealthResponse{Status: "ok", ChatAvailable: s.available}
	if !s.available {
		res.Status = "unavailable"
		return res
	}

	var err error
	if res.Drugs, err = s.drugs.Count(ctx); err != nil {
		s.logFailure(rag.Failure{Stage: chatbotModule, Kind: rag.FailureRegistry, Err: err})
		res.Status = "degraded"
	}
	if res.Passages, err = s.passages.Count(ctx); err != nil {
		s.logFailure(rag.Failure{Stage: chatbotModule, Kind: rag.FailureIndex, Err: err})
		res.Status = "degraded"
	}
	return res
}

func (s *chatbotService) Handle(ctx context.Context, question, userID string) (string, int) {
	userID = session.NormalizeUserID(userID)

	if strings.TrimSpace(question) == "" {
		return constant.MissingQuestionMessage, http.StatusBadRequest
	}

	if !s.available {
		s.logger.Error(chatbotModule, "Rejected question", map[string]interface{}{
			"user_id": userID,
			"error":   rag.ErrComponentsUnavailable.Error(),
		})
		return constant.ComponentsUnavailableMessage, http.StatusServiceUnavailable
	}

	if strings.ToLower(strings.TrimSpace(question)) == constant.ResetPhrase {
		return s.Reset(ctx, userID)
	}

	unlock := s.sessions.Lock(userID)
	defer unlock()

	profile := s.loadProfile(ctx, userID)
	history, err := s.sessions.History(ctx, userID)
	if err != nil {
		s.logFailure(rag.Failure{Stage: chatbotModule, Kind: rag.FailureSession, Err: err})
	}

	resolved := s.entities.Resolve(ctx, question, history)
	s.logFailures(resolved.Failures)
	drugs := resolved.Drugs

	if len(drugs) == 0 {
		if prompt.IsProfileQuery(question) {
			return s.answerWithoutDrugs(ctx, userID, question, BranchProfile,
				prompt.UserDetail(history, prompt.UserDetailsText(profile), question),
				constant.ProfileErrorMessage)
		}
		return s.answerWithoutDrugs(ctx, userID, question, BranchGeneral,
			prompt.GeneralChat(history, question),
			constant.GeneralErrorMessage)
	}

	drugs = OrderByMention(question, drugs)
	primary := drugs[0]

	candidates, failures := s.interactions.SecondaryCandidates(ctx, drugs, primary, profile)
	s.logFailures(failures)
	finding := s.interactions.Resolve(primary, candidates)

	excludeInteractions := false
	if !finding.Found && len(drugs) == 1 {
		label, failure := s.classifier.Classify(ctx, question)
		if failure != nil {
			s.logFailure(*failure)
		}
		excludeInteractions = label == intent.LabelGeneralInfo
	}

	citation := response.NewCitation(primary, finding.Secondary)
	var knowledge strings.Builder
	if finding.Found {
		knowledge.WriteString(finding.WarningBlock())
		citation.AddSource(finding.Source())
		s.emit(ctx, events.InteractionFlagged(userID, primary.DrugbankId, finding.Secondary.DrugbankId))
	}

	for _, target := range retrievalTargets(primary, finding.Secondary) {
		result := s.retriever.Retrieve(ctx, target, question, excludeInteractions)
		if result.Failure != nil {
			s.logFailure(*result.Failure)
		}
		knowledge.WriteString(result.ContextBlock())
		citation.AddSource(result.SourceIDs()...)
	}

	if knowledge.Len() == 0 {
		s.logger.Info(chatbotModule, "No grounding found", map[string]interface{}{
			"user_id":     userID,
			"drugbank_id": primary.DrugbankId,
		})
		s.emit(ctx, events.ChatAnswered(userID, BranchNoInformation, http.StatusOK, drugNames(drugs), nil))
		return fmt.Sprintf(constant.NoInformationMessage, primary.Name), http.StatusOK
	}

	// a structured finding is answered without earlier turns
	promptHistory := history
	if finding.Found {
		promptHistory = ""
	}

	answer, err := s.generator.Generate(ctx, prompt.Grounded(
		question,
		promptHistory,
		prompt.UserDetailsText(profile),
		knowledge.String(),
	))
	if err != nil {
		s.logFailure(rag.Failure{Stage: chatbotModule, Kind: rag.FailureGenerator, Err: err})
		return constant.AnswerErrorMessage, http.StatusInternalServerError
	}

	answer = strings.TrimSpace(answer)
	// history keeps the bare answer; the citation block goes to the caller only
	s.saveTurn(ctx, userID, question, answer)
	reply := answer + citation.Block()

	s.logger.Info(chatbotModule, "Question answered", map[string]interface{}{
		"user_id":              userID,
		"drugs":                drugNames(drugs),
		"interaction_found":    finding.Found,
		"exclude_interactions": excludeInteractions,
		"from_history":         resolved.FromHistory,
		"sources":              len(citation.Sources()),
	})
	s.emit(ctx, events.ChatAnswered(userID, BranchAnswered, http.StatusOK, drugNames(drugs), citation.Sources()))
	return reply, http.StatusOK
}

func (s *chatbotService) Reset(ctx context.Context, userID string) (string, int) {
	userID = session.NormalizeUserID(userID)

	unlock := s.sessions.Lock(userID)
	defer unlock()

	if err := s.sessions.Reset(ctx, userID); err != nil {
		s.logFailure(rag.Failure{Stage: chatbotModule, Kind: rag.FailureSession, Err: err})
	}
	s.emit(ctx, events.HistoryReset(userID))
	return constant.ResetConfirmationMessage, http.StatusOK
}

func (s *chatbotService) answerWithoutDrugs(ctx context.Context, userID, question, branch, fullPrompt, failureMessage string) (string, int) {
	answer, err := s.generator.Generate(ctx, fullPrompt)
	if err != nil {
		f := rag.Failure{Stage: chatbotModule, Kind: rag.FailureGenerator, Err: err}
		details := f.LogDetails()
		details["branch"] = branch
		s.logger.Error(chatbotModule, "Generation failed", details)
		return failureMessage, http.StatusInternalServerError
	}

	answer = strings.TrimSpace(answer)
	s.saveTurn(ctx, userID, question, answer)
	s.emit(ctx, events.ChatAnswered(userID, branch, http.StatusOK, nil, nil))
	return answer, http.StatusOK
}

func (s *chatbotService) loadProfile(ctx context.Context, userID string) *entity.UserProfile {
	if s.profiles == nil {
		return nil
	}
	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		s.logFailure(rag.Failure{Stage: chatbotModule, Kind: rag.FailureProfile, Err: err})
		return nil
	}
	return profile
}

func (s *chatbotService) saveTurn(ctx context.Context, userID, question, answer string) {
	if err := s.sessions.AppendTurn(ctx, userID, question, answer); err != nil {
		s.logFailure(rag.Failure{Stage: chatbotModule, Kind: rag.FailureSession, Err: err})
	}
}

func (s *chatbotService) emit(ctx context.Context, event events.Event) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.logger.Warn(chatbotModule, "Failed to publish event", map[string]interface{}{
			"type":  event.EventType(),
			"error": err.Error(),
		})
	}
}

func (s *chatbotService) logFailure(f rag.Failure) {
	s.logger.Warn(chatbotModule, "Stage degraded", f.LogDetails())
}

func (s *chatbotService) logFailures(failures []rag.Failure) {
	for _, f := range failures {
		s.logFailure(f)
	}
}

// OrderByMention makes the drug named first in an interaction-style question
// the primary one. Other questions keep resolution order.
func OrderByMention(question string, drugs []*entity.Drug) []*entity.Drug {
	if len(drugs) < 2 {
		return drugs
	}
	q := strings.ToLower(question)
	if !strings.Contains(q, "take") && !strings.Contains(q, "interaction") {
		return drugs
	}

	idx0 := strings.Index(q, strings.ToLower(drugs[0].Name))
	idx1 := strings.Index(q, strings.ToLower(drugs[1].Name))
	if idx1 > -1 && (idx1 < idx0 || idx0 == -1) {
		ordered := append([]*entity.Drug(nil), drugs...)
		ordered[0], ordered[1] = ordered[1], ordered[0]
		return ordered
	}
	return drugs
}

// retrievalTargets is the primary drug plus the secondary when it is a different drug.
func retrievalTargets(primary, secondary *entity.Drug) []*entity.Drug {
	targets := []*entity.Drug{primary}
	if secondary != nil && secondary.DrugbankId != "" && secondary.DrugbankId != primary.DrugbankId {
		targets = append(targets, secondary)
	}
	return targets
}

func drugNames(drugs []*entity.Drug) []string {
	names := make([]string, len(drugs))
	for i, d := range drugs {
		names[i] = d.Name
	}
	return names
}
