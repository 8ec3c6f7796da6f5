package routes

import (
	"github.com/blabla/messaging-backend/internal/handler"
	"github.com/blabla/messaging-backend/internal/middleware"
	"github.com/blabla/messaging-backend/pkg/jwt"
	"github.com/gin-gonic/gin"
)

// Setup configures all API routes
func Setup(
	router *gin.Engine,
	conversationHandler *handler.ConversationHandler,
	messageHandler *handler.MessageHandler,
	reactionHandler *handler.ReactionHandler,
	mediaHandler *handler.MediaHandler,
	jwtManager *jwt.Manager,
) {
	// Every DM endpoint requires an authenticated caller.
	api := router.Group("/api/v1", middleware.JWTAuth(jwtManager))

	// Conversations
	api.GET("/conversations", conversationHandler.List)
	api.GET("/conversations/unread-count", conversationHandler.UnreadCount)
	api.GET("/conversation", conversationHandler.GetWithUser)

	// Messages
	messages := api.Group("/messages")
	messages.POST("/send", messageHandler.Send)
	messages.POST("/react", reactionHandler.Set)
	messages.DELETE("/react", reactionHandler.Clear)

	// Attachments (only registered when object storage is configured)
	if mediaHandler != nil {
		api.POST("/media/upload", mediaHandler.Upload)
	}
}
