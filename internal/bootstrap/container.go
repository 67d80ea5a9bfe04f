package bootstrap

import (
	"context"
	"fmt"

	"medicine-chatbot-be/internal/config"
	"medicine-chatbot-be/internal/controller"
	"medicine-chatbot-be/internal/pkg/logger"
	"medicine-chatbot-be/internal/repository/contract"
	"medicine-chatbot-be/internal/repository/implementation"
	"medicine-chatbot-be/internal/repository/memory"
	"medicine-chatbot-be/internal/repository/redisstore"
	"medicine-chatbot-be/internal/service"
	"medicine-chatbot-be/pkg/embedding"
	"medicine-chatbot-be/pkg/embedding/jina"
	"medicine-chatbot-be/pkg/llm"
	"medicine-chatbot-be/pkg/llm/factory"
	pktNats "medicine-chatbot-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const (
	moduleName = "Bootstrap"
	chatTopic  = "chat.events"
)

type Container struct {
	ChatbotController controller.IChatbotController
	ChatbotService    service.IChatbotService

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger

	closers []func()
}

// NewContainer wires the chat pipeline. A nil db or a failing model provider
// does not abort startup; the chat service then reports itself unavailable.
func NewContainer(ctx context.Context, db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)
	c := &Container{Logger: sysLogger}

	// 1. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	var forwarder service.EventForwarder
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn(moduleName, "NATS unavailable, events stay in-process", map[string]interface{}{"error": err.Error()})
		} else {
			forwarder = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	publisherService := service.NewPublisherService(chatTopic, pubSub)
	c.ConsumerService = service.NewConsumerService(pubSub, chatTopic, auditLogger, forwarder, sysLogger)

	// 2. Model Providers
	collab := service.ChatbotCollaborators{}

	generator, err := newGenerator(ctx, cfg)
	if err != nil {
		sysLogger.Error(moduleName, "Failed to initialize LLM provider", map[string]interface{}{"error": err.Error()})
	} else {
		collab.Generator = generator
		sysLogger.Info(moduleName, "LLM provider ready", map[string]interface{}{
			"provider": cfg.Ai.LLMProvider,
			"model":    cfg.Ai.LLMModel,
		})
	}

	embedder, err := newEmbedder(ctx, cfg)
	if err != nil {
		sysLogger.Error(moduleName, "Failed to initialize embedding provider", map[string]interface{}{"error": err.Error()})
	} else {
		collab.Embedder = embedder
		sysLogger.Info(moduleName, "Embedding provider ready", map[string]interface{}{
			"provider": cfg.Ai.EmbeddingProvider,
			"model":    cfg.Ai.EmbeddingModel,
		})
	}

	// 3. Storage
	if db != nil {
		collab.Drugs = implementation.NewDrugRepository(db)
		collab.Passages = implementation.NewDrugPassageRepository(db)
		collab.Profiles = implementation.NewUserProfileRepository(db)
	} else {
		sysLogger.Error(moduleName, "No database connection, registry and index unavailable", nil)
	}

	sessions, closeSessions := newSessionRepository(ctx, cfg, sysLogger)
	collab.Sessions = sessions
	if closeSessions != nil {
		c.closers = append(c.closers, closeSessions)
	}

	// 4. Services
	c.ChatbotService = service.NewChatbotService(collab, service.ChatbotConfig{
		TopK:               cfg.Rag.TopK,
		InteractionSection: cfg.Rag.InteractionSection,
		NERMaxTokens:       cfg.Rag.NERMaxTokens,
	}, publisherService, sysLogger)

	// 5. Controllers
	c.ChatbotController = controller.NewChatbotController(c.ChatbotService)

	return c
}

// Close releases the bus, NATS and Redis connections and flushes logs.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func newGenerator(ctx context.Context, cfg *config.Config) (llm.LLMProvider, error) {
	params := factory.Params{
		Provider: cfg.Ai.LLMProvider,
		Model:    cfg.Ai.LLMModel,
		BaseURL:  cfg.Ai.LLMBaseURL,
	}
	switch cfg.Ai.LLMProvider {
	case "ollama":
		if params.BaseURL == "" {
			params.BaseURL = cfg.Ai.OllamaBaseURL
		}
	case "huggingface":
		params.APIKey = cfg.Keys.HuggingFace
	case "gemini":
		params.APIKey = cfg.Keys.GoogleGemini
	}
	return factory.NewLLMProvider(ctx, params)
}

func newEmbedder(ctx context.Context, cfg *config.Config) (embedding.EmbeddingProvider, error) {
	switch cfg.Ai.EmbeddingProvider {
	case "ollama":
		return embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.EmbeddingModel), nil
	case "jina":
		if cfg.Keys.Jina == "" {
			return nil, fmt.Errorf("JINA_API_KEY is required for the jina embedding provider")
		}
		return jina.NewJinaProvider(cfg.Keys.Jina), nil
	case "gemini":
		return embedding.NewGeminiProvider(ctx, cfg.Keys.GoogleGemini, cfg.Ai.EmbeddingModel)
	default:
		return nil, fmt.Errorf("unsupported embedding provider: %s", cfg.Ai.EmbeddingProvider)
	}
}

func newSessionRepository(ctx context.Context, cfg *config.Config, log logger.ILogger) (contract.SessionRepository, func()) {
	if cfg.Session.Backend != "redis" {
		return memory.NewSessionRepository(), nil
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Warn(moduleName, "Failed to parse Redis URL, using it as address", map[string]interface{}{"error": err.Error()})
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Warn(moduleName, "Redis unreachable, falling back to in-memory sessions", map[string]interface{}{"error": err.Error()})
		_ = rdb.Close()
		return memory.NewSessionRepository(), nil
	}

	log.Info(moduleName, "Using Redis session store", map[string]interface{}{"prefix": cfg.Session.KeyPrefix})
	return redisstore.NewSessionRepository(rdb, cfg.Session.KeyPrefix), func() { _ = rdb.Close() }
}
