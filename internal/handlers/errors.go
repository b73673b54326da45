package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/fixed_asset_ledger/internal/apperrors"
	"github.com/SscSPs/fixed_asset_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// respondWithError decodes a service error once into an HTTP status and body.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, op string) {
	status, msg := http.StatusInternalServerError, "A storage error occurred, please retry later"

	switch apperrors.KindOf(err) {
	case apperrors.KindValidation:
		status, msg = http.StatusBadRequest, err.Error()
	case apperrors.KindNotFound:
		status, msg = http.StatusNotFound, err.Error()
	case apperrors.KindDuplicatePeriod:
		status, msg = http.StatusConflict, apperrors.ErrDuplicatePeriod.Error()
	case apperrors.KindConflict:
		status, msg = http.StatusConflict, "Assets were modified concurrently, please retry"
	}

	if status >= http.StatusInternalServerError {
		logger.Error(op+" failed", slog.String("error", err.Error()))
	} else {
		logger.Warn(op+" rejected", slog.Int("status", status), slog.String("error", err.Error()))
	}
	body := gin.H{"error": msg}
	if status >= http.StatusInternalServerError {
		if id := middleware.GetRequestIDFromCtx(c.Request.Context()); id != "" {
			body["requestId"] = id
		}
	}
	c.JSON(status, body)
}
