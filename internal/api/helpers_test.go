package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resume_service/internal/db/dbtest"
	"resume_service/internal/middleware"
	"resume_service/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

const testTTL = 12 * time.Hour

type testServer struct {
	router *gin.Engine
	db     *gorm.DB
	tokens *utils.TokenManager
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conn := dbtest.Open(t)
	tokens, err := utils.NewTokenManager("api-test-secret", testTTL)
	require.NoError(t, err)

	r, err := NewRouter(conn, RouterOptions{Tokens: tokens})
	require.NoError(t, err)
	return &testServer{router: r, db: conn, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path string, body any, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		payload, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	s.router.ServeHTTP(resp, req)
	return resp
}

func (s *testServer) signUp(t *testing.T, email, password, name string) *httptest.ResponseRecorder {
	t.Helper()
	return s.do(t, http.MethodPost, "/auth/sign-up", map[string]string{
		"email":           email,
		"password":        password,
		"passwordConfirm": password,
		"name":            name,
	}, nil)
}

// login registers a user and returns its auth cookie
func (s *testServer) login(t *testing.T, email, name string) *http.Cookie {
	t.Helper()
	require.Equal(t, http.StatusCreated, s.signUp(t, email, "abcdef", name).Code)
	resp := s.do(t, http.MethodPost, "/auth/sign-in", map[string]string{"email": email, "password": "abcdef"}, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	cookie := authCookie(resp)
	require.NotNil(t, cookie)
	return cookie
}

func authCookie(resp *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range resp.Result().Cookies() {
		if c.Name == middleware.AuthCookie {
			return c
		}
	}
	return nil
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) envelope {
	t.Helper()
	var e envelope
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &e), resp.Body.String())
	return e
}

func decodeData(t *testing.T, resp *httptest.ResponseRecorder, dst any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(decode(t, resp).Data, dst))
}

func content(n int) string {
	return strings.Repeat("a", n)
}
