package api

import (
	"net/http"                           // HTTP status codes
	"resume_service/internal/middleware" // Custom middleware
	"resume_service/internal/store"      // Persistence
	"resume_service/internal/utils"      // Tokens

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// RouterOptions configures NewRouter
type RouterOptions struct {
	Tokens         *utils.TokenManager // Signs and verifies auth tokens
	SecureCookie   bool                // Mark the auth cookie Secure
	TrustedProxies []string            // Proxies allowed to set client IP headers
}

// NewRouter wires every route of the service
func NewRouter(db *gorm.DB, opts RouterOptions) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(opts.TrustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.ErrorHandler())

	users := store.NewUserStore(db)
	resumes := store.NewResumeStore(db)
	requireAuth := middleware.AuthMiddleware(users, opts.Tokens)

	r.GET("/healthz", HealthHandler(db))

	// Auth routes
	auth := r.Group("/auth")
	auth.POST("/sign-up", SignUpHandler(users))
	auth.POST("/sign-in", SignInHandler(users, opts.Tokens, opts.SecureCookie))
	auth.GET("/users", requireAuth, CurrentUserHandler())

	// Resume routes (protected by the auth cookie)
	resumeGroup := r.Group("/resumes", requireAuth)
	resumeGroup.POST("", CreateResumeHandler(resumes))
	resumeGroup.GET("", ListResumesHandler(resumes))
	resumeGroup.GET("/:id", GetResumeHandler(resumes))
	resumeGroup.PATCH("/:id", UpdateResumeHandler(resumes))
	resumeGroup.DELETE("/:id", DeleteResumeHandler(resumes))

	return r, nil
}

// HealthHandler reports whether the database is reachable
func HealthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
