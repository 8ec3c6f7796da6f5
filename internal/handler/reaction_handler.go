package handler

import (
	"net/http"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/domain"
	"github.com/blabla/messaging-backend/internal/middleware"
	"github.com/blabla/messaging-backend/internal/service"
	"github.com/blabla/messaging-backend/pkg/ginutil"
	"github.com/gin-gonic/gin"
)

// ReactionHandler handles message reaction API endpoints
type ReactionHandler struct {
	rcnService service.ReactionService
}

// NewReactionHandler creates a new ReactionHandler
func NewReactionHandler(rcnService service.ReactionService) *ReactionHandler {
	return &ReactionHandler{rcnService: rcnService}
}

func messageIDParam(c *gin.Context) (uint64, bool) {
	id, err := ginutil.QueryUint64(c, "messageId")
	if err != nil || id == 0 {
		common.ErrorResponse(c, http.StatusBadRequest, "valid messageId query parameter is required", nil)
		return 0, false
	}
	return id, true
}

// Set handles POST /api/v1/messages/react?messageId=<id>
// Sending a new emoji overwrites the caller's previous reaction.
func (h *ReactionHandler) Set(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	if callerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	messageID, ok := messageIDParam(c)
	if !ok {
		return
	}

	var req domain.SetReactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "emoji is required", err)
		return
	}

	reaction, err := h.rcnService.SetReaction(callerID, messageID, req.Emoji)
	if err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, reaction, nil)
}

// Clear handles DELETE /api/v1/messages/react?messageId=<id>
// Idempotent: clearing a reaction that does not exist still succeeds.
func (h *ReactionHandler) Clear(c *gin.Context) {
	callerID := middleware.GetUserID(c)
	if callerID == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	messageID, ok := messageIDParam(c)
	if !ok {
		return
	}

	if err := h.rcnService.ClearReaction(callerID, messageID); err != nil {
		respondError(c, err)
		return
	}
	common.SuccessResponse(c, gin.H{"cleared": true}, nil)
}
