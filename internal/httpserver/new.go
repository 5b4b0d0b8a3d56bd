package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"todo-chat-api/internal/chat"
	"todo-chat-api/internal/conversation"
	"todo-chat-api/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Chat domain
	chatUC          chat.UseCase
	convStore       conversation.Store
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	ChatUseCase       chat.UseCase
	ConversationStore conversation.Store
	RateLimitPerMin   int
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		chatUC:          cfg.ChatUseCase,
		convStore:       cfg.ConversationStore,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.chatUC == nil {
		return errors.New("chat use case is required")
	}
	if srv.convStore == nil {
		return errors.New("conversation store is required")
	}
	return nil
}
