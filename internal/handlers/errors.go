package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/aba_ledger/internal/apperrors"
	"github.com/SscSPs/aba_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/aba_ledger/internal/core/ports/repositories"
	"github.com/gin-gonic/gin"
)

// statusFor maps a service error to an HTTP status.
func statusFor(err error) int {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, portsrepo.ErrEntryExists):
		return http.StatusConflict
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, domain.ErrUnknownVariant):
		return http.StatusBadRequest
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// respondError logs err and writes it as a JSON error body. Server errors
// are reported with the generic message only.
func respondError(c *gin.Context, logger *slog.Logger, err error, message string) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		logger.Error(message, slog.String("error", err.Error()))
		c.JSON(status, gin.H{"error": message})
		return
	}
	logger.Warn(message, slog.String("error", err.Error()), slog.Int("status", status))
	c.JSON(status, gin.H{"error": err.Error()})
}

// parseIDParam reads a ULID path parameter, writing a 400 when it is malformed.
func parseIDParam(c *gin.Context, logger *slog.Logger, name string) (domain.ID, bool) {
	raw := c.Param(name)
	id, err := domain.ParseID(raw)
	if err != nil {
		logger.Warn("Invalid id in path", slog.String("param", name), slog.String("value", raw))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + ": " + err.Error()})
		return domain.ID{}, false
	}
	return id, true
}
