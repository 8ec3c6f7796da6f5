package handler

import (
	"errors"
	"net/http"

	"github.com/blabla/messaging-backend/internal/common"
	"github.com/gin-gonic/gin"
)

// respondError translates service errors to the HTTP taxonomy: validation →
// 400, missing resources → 404, non-participants → 403, everything else → 500
// with a generic body.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrSelfMessage),
		errors.Is(err, common.ErrEmptyMessage),
		errors.Is(err, common.ErrBadMediaType),
		errors.Is(err, common.ErrInvalidCursor),
		errors.Is(err, common.ErrInvalidInput):
		common.ErrorResponse(c, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, common.ErrUserNotFound),
		errors.Is(err, common.ErrConversationNotFound),
		errors.Is(err, common.ErrMessageNotFound),
		errors.Is(err, common.ErrNotFound):
		common.ErrorResponse(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, common.ErrForbidden),
		errors.Is(err, common.ErrNotParticipant):
		common.ErrorResponse(c, http.StatusForbidden, err.Error(), nil)
	case errors.Is(err, common.ErrUnauthorized):
		common.ErrorResponse(c, http.StatusUnauthorized, err.Error(), nil)
	default:
		common.ErrorResponse(c, http.StatusInternalServerError, "internal server error", err)
	}
}
