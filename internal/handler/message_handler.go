package handler

import (
	"net/http"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	"github.com/blabla/messaging-backend/internal/middleware"
	"github.com/blabla/messaging-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// MessageHandler handles message send API endpoints
type MessageHandler struct {
	msgService service.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(msgService service.MessageService) *MessageHandler {
	return &MessageHandler{msgService: msgService}
}

// Send handles POST /api/v1/messages/send
func (h *MessageHandler) Send(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	if callerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	var req domain.SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "invalid request body", err)
		return
	}

	msg, err := h.msgService.Send(c.Request.Context(), callerID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.CountMessageSent()
	common.CreatedResponse(c, msg)
}
