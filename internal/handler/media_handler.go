package handler

import (
	"net/http"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/blabla/messaging-backend/internal/middleware"
	"github.com/blabla/messaging-backend/internal/service"
	"github.com/gin-gonic/gin"
)

// MediaHandler handles DM attachment uploads
type MediaHandler struct {
	mediaService *service.MediaService
}

// NewMediaHandler creates a new MediaHandler
func NewMediaHandler(mediaService *service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload handles POST /api/v1/media/upload (multipart form, field "file").
// Returns {url, media_type} for use in POST /messages/send.
func (h *MediaHandler) Upload(c *gin.Context) {
	if middleware.GetUserID(c) == "" {
		common.ErrorResponse(c, http.StatusUnauthorized, "authentication required", nil)
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		common.ErrorResponse(c, http.StatusBadRequest, "file is required", err)
		return
	}

	result, err := h.mediaService.Upload(c.Request.Context(), file)
	if err != nil {
		// Validation failures wrap a sentinel and map to 400; storage
		// faults fall through to 500.
		respondError(c, err)
		return
	}
	common.CreatedResponse(c, result)
}
