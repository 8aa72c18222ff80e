package api

import (
	"errors"                         // Error classification
	"fmt"                            // Message formatting
	"io"                             // Empty body detection
	"reflect"                        // Struct field tags
	"resume_service/internal/apperr" // Error kinds
	"strings"                        // String manipulation

	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/gin-gonic/gin/binding"       // Request binding
	"github.com/go-playground/validator/v10" // Struct validation
)

const msgInvalidBody = "request body must be valid JSON"

func init() {
	// Report JSON field names instead of Go field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})
	}
}

// bindJSON decodes and validates the request body into obj.
// An empty body is validated as an empty object.
func bindJSON(c *gin.Context, obj any) error {
	err := c.ShouldBindJSON(obj)
	if errors.Is(err, io.EOF) {
		err = binding.Validator.ValidateStruct(obj) // No body, so check required fields
	}
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperr.Wrap(apperr.Validation, fieldMessage(verrs[0]), err) // First failing field only
	}
	return apperr.Wrap(apperr.Validation, msgInvalidBody, err)
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}
