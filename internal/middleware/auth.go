package middleware

import (
	"errors"                         // Error classification
	"net/http"                       // Cookie SameSite mode
	"resume_service/internal/apperr" // Error kinds
	"resume_service/internal/domain" // Importing domain models
	"resume_service/internal/store"  // User lookups
	"resume_service/internal/utils"  // JWT utility functions
	"strings"                        // String manipulation

	"github.com/gin-gonic/gin" // Gin web framework
)

// AuthCookie is the cookie carrying "Bearer <token>"
const AuthCookie = "authorization"

// TokenScheme is the only accepted credential scheme
const TokenScheme = "Bearer"

// Context keys set by AuthMiddleware
const (
	userKey   = "user"
	userIDKey = "userID"
)

// Authentication failure messages
const (
	MsgNoToken      = "authentication token is missing"
	MsgWrongScheme  = "unsupported token type"
	MsgTokenExpired = "token has expired"
	MsgTokenInvalid = "token verification failed"
	MsgStaleUser    = "token user does not exist"
)

// AuthMiddleware validates the auth cookie and attaches the token's user to the context
func AuthMiddleware(users *store.UserStore, tokens *utils.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(AuthCookie) // Read the auth cookie
		if err != nil || raw == "" {
			abort(c, apperr.NewAuthentication(MsgNoToken))
			return
		}
		// Expect "Bearer <token>"
		scheme, token, _ := strings.Cut(raw, " ")
		if scheme != TokenScheme {
			abort(c, apperr.NewAuthentication(MsgWrongScheme))
			return
		}
		claims, err := tokens.Parse(token) // Verify signature and expiry
		if err != nil {
			if errors.Is(err, utils.ErrTokenExpired) {
				abort(c, apperr.Wrap(apperr.Authentication, MsgTokenExpired, err))
				return
			}
			abort(c, apperr.Wrap(apperr.Authentication, MsgTokenInvalid, err))
			return
		}
		user, err := users.FindByID(c.Request.Context(), claims.UserID) // Load the token's user
		if err != nil {
			if apperr.Is(err, apperr.NotFound) {
				ClearAuthCookie(c)
				abort(c, apperr.Wrap(apperr.Authentication, MsgStaleUser, err))
				return
			}
			abort(c, err)
			return
		}
		c.Set(userKey, user)      // Store the loaded user in context
		c.Set(userIDKey, user.ID) // Store userID in context
		c.Next()                  // Proceed to the next handler
	}
}

// CurrentUser returns the user attached by AuthMiddleware
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, ok := c.Get(userKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*domain.User)
	return u, ok && u != nil
}

// SetAuthCookie stores token in the auth cookie for maxAge seconds
func SetAuthCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(AuthCookie, TokenScheme+" "+token, maxAge, "/", "", secure, true)
}

// ClearAuthCookie expires the auth cookie
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(AuthCookie, "", -1, "/", "", false, true)
}

func abort(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
