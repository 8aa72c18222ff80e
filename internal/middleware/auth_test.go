package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"resume_service/internal/db/dbtest"
	"resume_service/internal/domain"
	"resume_service/internal/store"
	"resume_service/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	router *gin.Engine
	users  *store.UserStore
	tokens *utils.TokenManager
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := store.NewUserStore(dbtest.Open(t))
	tokens, err := utils.NewTokenManager("middleware-test-secret", time.Hour)
	require.NoError(t, err)

	r := gin.New()
	r.Use(ErrorHandler())
	r.GET("/me", AuthMiddleware(users, tokens), func(c *gin.Context) {
		u, ok := CurrentUser(c)
		if !ok {
			c.Status(http.StatusTeapot)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": u.ID, "email": u.Email})
	})
	return &authFixture{router: r, users: users, tokens: tokens}
}

func (f *authFixture) do(t *testing.T, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp := httptest.NewRecorder()
	f.router.ServeHTTP(resp, req)
	return resp
}

func errorMessage(t *testing.T, resp *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	return body["error"]
}

func bearer(token string) *http.Cookie {
	return &http.Cookie{Name: AuthCookie, Value: "Bearer+" + token}
}

func TestAuthMiddlewareAttachesUser(t *testing.T) {
	f := newAuthFixture(t)
	u := &domain.User{Email: "a@x.com", Password: "hash", Name: "A"}
	require.NoError(t, f.users.Create(context.Background(), u))

	token, err := f.tokens.Generate(u.ID)
	require.NoError(t, err)

	resp := f.do(t, bearer(token))
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "a@x.com")
}

func TestAuthMiddlewareRejections(t *testing.T) {
	f := newAuthFixture(t)
	u := &domain.User{Email: "a@x.com", Password: "hash", Name: "A"}
	require.NoError(t, f.users.Create(context.Background(), u))

	valid, err := f.tokens.Generate(u.ID)
	require.NoError(t, err)
	other, err := utils.NewTokenManager("another-secret", time.Hour)
	require.NoError(t, err)
	forged, err := other.Generate(u.ID)
	require.NoError(t, err)

	cases := []struct {
		name   string
		cookie *http.Cookie
		want   string
	}{
		{"missing cookie", nil, MsgNoToken},
		{"wrong scheme", &http.Cookie{Name: AuthCookie, Value: "Basic+" + valid}, MsgWrongScheme},
		{"no scheme", &http.Cookie{Name: AuthCookie, Value: valid}, MsgWrongScheme},
		{"garbage token", bearer("not.a.token"), MsgTokenInvalid},
		{"forged token", bearer(forged), MsgTokenInvalid},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := f.do(t, tc.cookie)
			assert.Equal(t, http.StatusUnauthorized, resp.Code)
			assert.Equal(t, tc.want, errorMessage(t, resp))
		})
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	f := newAuthFixture(t)
	expiring, err := utils.NewTokenManager("middleware-test-secret", time.Nanosecond)
	require.NoError(t, err)

	token, err := expiring.Generate(1)
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond) // NumericDate has second precision

	resp := f.do(t, bearer(token))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, MsgTokenExpired, errorMessage(t, resp))
}

func TestAuthMiddlewareStaleUserClearsCookie(t *testing.T) {
	f := newAuthFixture(t)
	token, err := f.tokens.Generate(404)
	require.NoError(t, err)

	resp := f.do(t, bearer(token))
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	assert.Equal(t, MsgStaleUser, errorMessage(t, resp))

	var cleared bool
	for _, c := range resp.Result().Cookies() {
		if c.Name == AuthCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared, "expected the auth cookie to be cleared")
}
