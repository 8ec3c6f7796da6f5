package handler

import (
	"net/http"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/middleware"
	"github.com/blabla/messaging-backend/internal/service"
	"github.com/blabla/messaging-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// ConversationHandler handles conversation list API endpoints
type ConversationHandler struct {
	convService service.ConversationService
	msgService  service.MessageService
}

// NewConversationHandler creates a new ConversationHandler
func NewConversationHandler(convService service.ConversationService, msgService service.MessageService) *ConversationHandler {
	return &ConversationHandler{convService: convService, msgService: msgService}
}

// List handles GET /api/v1/conversations
func (h *ConversationHandler) List(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	if callerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	conversations, err := h.convService.ListForUser(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, conversations, &common.Meta{Total: int64(len(conversations))})
}

// UnreadCount handles GET /api/v1/conversations/unread-count
func (h *ConversationHandler) UnreadCount(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	if callerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	count, err := h.convService.UnreadCount(c.Request.Context(), callerID)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"count": count}, nil)
}

// GetWithUser handles GET /api/v1/conversation?userId=<id>
// Viewing marks the caller's unread messages in the conversation as read.
func (h *ConversationHandler) GetWithUser(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	if callerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	otherUserID := c.Query("userId")
	if otherUserID == "" {
		common.ErrorResponse(c, http.StatusBadRequest, "userId query parameter is required", nil)
		return
	}

	cursor := c.Query("cursor")
	limit := ginutil.QueryInt(c, "limit", 0)

	messages, meta, err := h.msgService.GetConversationWith(c.Request.Context(), callerID, otherUserID, cursor, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, messages, meta)
}
