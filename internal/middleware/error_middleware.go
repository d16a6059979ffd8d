package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/pkg/apperrors"
	"github.com/yigit/uniregistry/internal/pkg/logger"
)

// --- Central Error Handling ---

// HandleAPIError maps an error kind onto a status code and a standard error body.
// Store failures are answered with a generic message; the cause only goes to the log.
func HandleAPIError(c *gin.Context, err error) {
	log := logger.Ctx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrInvalidIdentifier):
		detail := dto.NewErrorDetail(dto.ErrorCodeInvalidIdentifier, clientMessage(err, "Invalid identifier format"))
		if ce := customError(err); ce != nil && len(ce.Details) > 0 {
			detail = detail.WithDetails(ce.Details)
		}
		respondError(c, http.StatusBadRequest, detail)
	case errors.Is(err, apperrors.ErrValidationFailed):
		respondError(c, http.StatusBadRequest,
			dto.NewErrorDetail(dto.ErrorCodeValidationFailed, clientMessage(err, "Validation failed")))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		respondError(c, http.StatusNotFound,
			dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, clientMessage(err, "Resource not found")).
				WithSeverity(dto.ErrorSeverityWarning))
	case errors.Is(err, apperrors.ErrConnection):
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Document store unreachable")
		respondError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeStoreUnavailable, "Document store unavailable").
				WithSeverity(dto.ErrorSeverityCritical))
	case errors.Is(err, apperrors.ErrStoreOperation):
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Document store operation failed")
		respondError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeDatabaseError, "Database operation failed"))
	default:
		log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled error")
		respondError(c, http.StatusInternalServerError,
			dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error"))
	}
}

func respondError(c *gin.Context, status int, detail *dto.ErrorDetail) {
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func customError(err error) *apperrors.CustomError {
	var ce *apperrors.CustomError
	if errors.As(err, &ce) {
		return ce
	}
	return nil
}

// clientMessage picks the message safe to return for a 4xx error
func clientMessage(err error, fallback string) string {
	if ce := customError(err); ce != nil && ce.Message != "" {
		return ce.Message
	}
	if err != nil {
		return err.Error()
	}
	return fallback
}
