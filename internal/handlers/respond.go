package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hraxis/hr_payroll_app/internal/apperrors"
	"github.com/hraxis/hr_payroll_app/internal/dto"
	"github.com/hraxis/hr_payroll_app/internal/middleware"
)

// respondError translates a service error into the response envelope with the
// status the error taxonomy dictates. Store errors never leak their detail.
func respondError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, dto.Fail(err.Error()))
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.Fail(err.Error()))
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.Fail("internal error"))
	}
}

// bindError reports a request binding failure as a validation response.
func bindError(c *gin.Context, err error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.Fail("invalid request format: "+err.Error()))
}

// actorID pulls the authenticated user id or fails the request.
func actorID(c *gin.Context) (string, bool) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.Fail("unauthorized"))
		return "", false
	}
	return userID, true
}

// requireApprovalLevel checks the actor's capability for an approval action.
func requireApprovalLevel(c *gin.Context, level int) bool {
	if middleware.GetApprovalLevelFromContext(c.Request.Context()) < level {
		c.JSON(http.StatusForbidden, dto.Fail("operation not permitted at this approval level"))
		return false
	}
	return true
}
