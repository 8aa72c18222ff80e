package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"resume_service/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestErrorHandlerMapsKinds(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{apperr.NewValidation("title is required"), http.StatusBadRequest, "title is required"},
		{apperr.NewDuplicate("email is already registered"), http.StatusConflict, "email is already registered"},
		{apperr.NewAuthentication("token has expired"), http.StatusUnauthorized, "token has expired"},
		{apperr.NewNotFound("resume not found"), http.StatusNotFound, "resume not found"},
		{apperr.Internal(errors.New("sql: connection refused")), http.StatusInternalServerError, apperr.UnexpectedMessage},
		{errors.New("raw failure"), http.StatusInternalServerError, apperr.UnexpectedMessage},
	}
	for _, tc := range cases {
		r := gin.New()
		r.Use(RequestLogger(), ErrorHandler())
		r.GET("/", func(c *gin.Context) { _ = c.Error(tc.err) })

		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, tc.status, resp.Code)
		assert.JSONEq(t, `{"error":"`+tc.msg+`"}`, resp.Body.String())
		assert.NotContains(t, resp.Body.String(), "connection refused")
		assert.NotEmpty(t, resp.Header().Get(RequestIDHeader))
	}
}

func TestErrorHandlerPassesThroughSuccess(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	resp := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "fixed-id")
	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, `{"ok":true}`, resp.Body.String())
}
