package handlers

import (
	"errors"
	"net/http"

	apperrors "hackmonitor-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case apperrors.IsValidation(err):
		return http.StatusBadRequest
	case apperrors.IsNotFound(err):
		return http.StatusNotFound
	case apperrors.IsAlreadyExists(err),
		errors.Is(err, apperrors.ErrInvalidOnboardingStep),
		errors.Is(err, apperrors.ErrOnboardingCommitted):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{"error": err.Error()})
}
