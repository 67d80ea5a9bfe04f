package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"medicine-chatbot-be/internal/bootstrap"
	"medicine-chatbot-be/internal/config"
	"medicine-chatbot-be/internal/server"
	"medicine-chatbot-be/internal/tracer"
	"medicine-chatbot-be/pkg/database"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Initialize Database; a failure leaves the chat endpoint answering 503
	gormDB, dbErr := database.NewGormDBFromDSN(cfg.Database.Connection, cfg.IsProduction())

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(ctx, gormDB, cfg)
	defer container.Close()

	if dbErr != nil {
		container.Logger.Error("Main", "Unable to connect to database", map[string]interface{}{"error": dbErr.Error()})
	}

	shutdownTracer := tracer.InitTracer("medicine-chatbot-be", container.Logger)
	defer shutdownTracer(context.Background())

	// 4. Start Background Services
	if err := container.ConsumerService.Consume(ctx); err != nil {
		container.Logger.Error("Main", "Chat event consumer failed to start", map[string]interface{}{"error": err.Error()})
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown()
	}()

	// 6. Run Server
	if err := srv.Run(); err != nil {
		container.Logger.Error("Main", "Server stopped", map[string]interface{}{"error": err.Error()})
	}
}
