package http

import (
	"github.com/gin-gonic/gin"

	"todo-chat-api/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods. Only the
// message endpoint is rate limited; transcript reads are cheap.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	chat := rg.Group("/chat")
	{
		chat.POST("", mw.RateLimit(), h.SendMessage)
		chat.GET("/:conversationId", h.GetConversation)
		chat.DELETE("/:conversationId", h.DeleteConversation)
	}
}
