package middleware

import (
	"net/http"                       // HTTP status codes
	"resume_service/internal/apperr" // Error kinds

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// StatusFor maps an error kind to its HTTP status
func StatusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.Duplicate:
		return http.StatusConflict
	case apperr.Authentication:
		return http.StatusUnauthorized
	case apperr.NotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler writes the response for the last error attached with c.Error.
// It must be registered before every handler that reports errors.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		kind := apperr.KindOf(err)
		status := StatusFor(kind)

		entry := logrus.WithFields(logrus.Fields{
			"request_id": GetRequestID(c),
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     status,
			"kind":       kind.String(),
			"error":      err.Error(),
		})
		if kind == apperr.Unexpected {
			entry.Error("Request failed")
		} else {
			entry.Warn("Request rejected")
		}

		if c.Writer.Written() {
			return // Handler already answered
		}
		c.JSON(status, gin.H{"error": apperr.PublicMessage(err)})
	}
}
