package http

import (
	"campus-connect/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require an authenticated caller.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/chat", mw.Auth(), h.SendMessage)

	conversations := rg.Group("/conversations")
	{
		conversations.GET("", mw.Auth(), h.ListConversations)
		conversations.GET("/:id", mw.Auth(), h.GetConversation)
		conversations.DELETE("/:id", mw.Auth(), h.DeleteConversation)
	}
}
