package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/yigit/uniregistry/internal/app/models/dto"
	"github.com/yigit/uniregistry/internal/pkg/validation"
)

// ObjectIDTag is the binding tag for identifier strings, accepted exactly when the
// services accept them.
const ObjectIDTag = "objectid"

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation(ObjectIDTag, func(fl validator.FieldLevel) bool {
			return validation.IsObjectIDHex(fl.Field().String())
		})
	}
}

// BindJSON binds the request body into obj. On failure it writes a 400 response with
// one entry per invalid field and returns false.
func BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request format")
		if fields := FormatValidationErrors(err); len(fields) > 0 {
			errorDetail = errorDetail.WithDetails(fields)
		} else {
			errorDetail = errorDetail.WithDetails(err.Error())
		}
		c.AbortWithStatusJSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return false
	}
	return true
}

// FormatValidationErrors turns validator failures into field errors. Other errors,
// such as malformed JSON, yield nil.
func FormatValidationErrors(err error) []dto.FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]dto.FieldError, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, dto.FieldError{
			Field:   e.Field(),
			Message: formatValidationError(e),
		})
	}
	return fields
}

// formatValidationError creates a human-readable validation error message
func formatValidationError(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case ObjectIDTag:
		return e.Field() + " must be a 24 character hexadecimal identifier"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
