package api

import (
	"net/http"                           // HTTP status codes
	"resume_service/internal/apperr"     // Error kinds
	"resume_service/internal/domain"     // Importing domain models
	"resume_service/internal/middleware" // Auth cookie and current user
	"resume_service/internal/store"      // Persistence
	"resume_service/internal/utils"      // Password hashing and tokens
	"strings"                            // String manipulation
	"sync"                               // One-time dummy hash

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Auth messages
const (
	MsgSignedUp           = "sign-up completed"
	MsgSignedIn           = "sign-in succeeded"
	MsgPasswordMismatch   = "password and passwordConfirm do not match"
	MsgInvalidCredentials = "invalid credentials"
)

// SignUpRequest is the body of POST /auth/sign-up
type SignUpRequest struct {
	Email           string `json:"email" binding:"required,email"`     // Email must be a valid address
	Password        string `json:"password" binding:"required,min=6"`  // At least 6 characters
	PasswordConfirm string `json:"passwordConfirm" binding:"required"` // Must equal Password
	Name            string `json:"name" binding:"required"`            // Display name
}

// SignInRequest is the body of POST /auth/sign-in
type SignInRequest struct {
	Email    string `json:"email" binding:"required,email"`    // Email must be a valid address
	Password string `json:"password" binding:"required,min=6"` // At least 6 characters
}

// dummyHash is checked for unknown emails so every sign-in failure runs one bcrypt comparison
var dummyHash = sync.OnceValue(func() string {
	hash, _ := utils.HashPassword("resume-service-dummy-password")
	return hash
})

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUpHandler registers a new user. No token is issued.
func SignUpHandler(users *store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignUpRequest
		if err := bindJSON(c, &req); err != nil {
			_ = c.Error(err)
			return
		}
		if req.Password != req.PasswordConfirm {
			_ = c.Error(apperr.NewValidation(MsgPasswordMismatch))
			return
		}
		ctx := c.Request.Context()
		email := normalizeEmail(req.Email)
		// Reject a registered email before paying for the hash
		exists, err := users.ExistsByEmail(ctx, email)
		if err != nil {
			_ = c.Error(err)
			return
		}
		if exists {
			_ = c.Error(apperr.NewDuplicate(store.MsgEmailTaken))
			return
		}
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			if !apperr.Is(err, apperr.Validation) {
				err = apperr.Internal(err)
			}
			_ = c.Error(err) // Validation when the password is too long for bcrypt
			return
		}
		user := domain.User{Email: email, Password: hash, Name: req.Name, Role: domain.RoleMember}
		if err := users.Create(ctx, &user); err != nil {
			_ = c.Error(err) // Duplicate when a concurrent sign-up won the race
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id": user.ID,
			"email":   user.Email,
		}).Info("User registered")
		c.JSON(http.StatusCreated, gin.H{"message": MsgSignedUp})
	}
}

// SignInHandler verifies credentials and sets the auth cookie
func SignInHandler(users *store.UserStore, tokens *utils.TokenManager, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignInRequest
		if err := bindJSON(c, &req); err != nil {
			_ = c.Error(err)
			return
		}
		user, err := users.FindByEmail(c.Request.Context(), normalizeEmail(req.Email))
		if err != nil && !apperr.Is(err, apperr.NotFound) {
			_ = c.Error(err)
			return
		}
		// Unknown email and wrong password are indistinguishable
		if user == nil {
			utils.CheckPassword(dummyHash(), req.Password)
			_ = c.Error(apperr.NewAuthentication(MsgInvalidCredentials))
			return
		}
		if !utils.CheckPassword(user.Password, req.Password) {
			_ = c.Error(apperr.NewAuthentication(MsgInvalidCredentials))
			return
		}
		token, err := tokens.Generate(user.ID)
		if err != nil {
			_ = c.Error(apperr.Internal(err))
			return
		}
		middleware.SetAuthCookie(c, token, int(tokens.TTL().Seconds()), secureCookie)
		logrus.WithField("user_id", user.ID).Info("User signed in")
		c.JSON(http.StatusOK, gin.H{"message": MsgSignedIn})
	}
}

// CurrentUserHandler returns the authenticated user's profile
func CurrentUserHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := middleware.CurrentUser(c)
		if !ok {
			_ = c.Error(apperr.NewAuthentication(middleware.MsgNoToken))
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": newUserResponse(user)})
	}
}
