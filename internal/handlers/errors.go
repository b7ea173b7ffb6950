package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/dto"
	"github.com/SscSPs/car_insurance_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Response bodies shared by several handlers.
const (
	msgValidationFailed = "Validation failed"
	msgConflict         = "The request conflicts with a concurrent change. Please retry."
	msgInternal         = "Internal server error"
)

// writeServiceError maps a service error onto the HTTP response. notFound is
// the message used for apperrors.ErrNotFound.
func writeServiceError(c *gin.Context, err error, notFound string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if v, ok := apperrors.AsValidationFailed(err); ok {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msgValidationFailed, Fields: v.Fields})
		return
	}

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFound})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: msgConflict})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: msgInternal})
	}
}

// bindJSON binds the request body into req and writes a 400 when that fails.
// Tag violations are reported per field like service validation errors.
func bindJSON(c *gin.Context, req any) bool {
	err := c.ShouldBindJSON(req)
	if err == nil {
		return true
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind JSON", slog.String("error", err.Error()))
	if verr := dto.BindingErrors(err); verr != nil {
		writeServiceError(c, verr, "")
		return false
	}
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
	return false
}
