package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"todo-chat-api/config"
	_ "todo-chat-api/docs" // Swagger docs
	"todo-chat-api/internal/chat/parser"
	chatUC "todo-chat-api/internal/chat/usecase"
	"todo-chat-api/internal/conversation"
	"todo-chat-api/internal/httpserver"
	restRepo "todo-chat-api/internal/task/repository/rest"
	"todo-chat-api/pkg/dates"
	"todo-chat-api/pkg/log"
)

// @title       Todo Chat API
// @description Natural-language chatbot over an external Task Store: parses task commands, resolves fuzzy titles, and drives create/complete/delete flows.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Chat API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task Store URL: %s", cfg.TaskStore.URL)

	// 3. Date parser for relative due dates
	dateParser, dtErr := dates.NewParser(cfg.Chat.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Chat.Timezone, dtErr)
		dateParser, _ = dates.NewParser("UTC")
	}

	// 4. Task Store repository
	storeClient := restRepo.NewClient(cfg.TaskStore.URL, cfg.TaskStore.AccessToken, cfg.TaskStore.Timeout)
	taskRepo := restRepo.New(storeClient, logger)

	// 5. Conversation store (bounded, TTL-evicted)
	convStore := conversation.NewStore(cfg.Chat.MaxConversations, cfg.Chat.ConversationTTL)

	// 6. Chat UseCase
	uc := chatUC.New(logger, parser.New(dateParser), taskRepo, convStore)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:            logger,
		Port:              cfg.HTTPServer.Port,
		Mode:              cfg.HTTPServer.Mode,
		Environment:       cfg.Environment.Name,
		ChatUseCase:       uc,
		ConversationStore: convStore,
		RateLimitPerMin:   cfg.Chat.RateLimitPerMin,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
