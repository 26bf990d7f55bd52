package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/expense_approval_app/internal/apperrors"
	"github.com/SscSPs/expense_approval_app/internal/dto"
	"github.com/SscSPs/expense_approval_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// baseHandler holds what every handler needs to render errors.
type baseHandler struct {
	exposeErrorDetails bool
}

// respondError maps err to its status and kind. The wrapped cause is only
// included when error details are exposed.
func (h baseHandler) respondError(c *gin.Context, err error, msg string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	status := apperrors.HTTPStatus(err)
	kind := apperrors.KindOf(err)

	if status >= http.StatusInternalServerError {
		logger.Error(msg, slog.String("error", err.Error()), slog.String("kind", kind))
	} else {
		logger.Warn(msg, slog.String("error", err.Error()), slog.String("kind", kind))
	}

	resp := dto.ErrorResponse{Error: apperrors.PublicMessage(err), Kind: kind}
	if h.exposeErrorDetails {
		if cause := errors.Unwrap(err); cause != nil {
			resp.Detail = cause.Error()
		} else {
			resp.Detail = err.Error()
		}
	}
	c.JSON(status, resp)
}

// bindError reports a request that failed to bind or validate.
func (h baseHandler) bindError(c *gin.Context, err error) {
	h.respondError(c, apperrors.NewValidationFailedError("Invalid request format: "+err.Error()), "Failed to bind request")
}

// requireUserID returns the authenticated caller or writes a 401.
func requireUserID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Unauthorized", Kind: "Unauthorized"})
		return "", false
	}
	return userID, true
}
