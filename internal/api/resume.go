package api

import (
	"net/http"                           // HTTP status codes
	"resume_service/internal/apperr"     // Error kinds
	"resume_service/internal/domain"     // Importing domain models
	"resume_service/internal/middleware" // Current user
	"resume_service/internal/store"      // Persistence
	"strconv"                            // Path parameter parsing
	"unicode/utf8"                       // Content length in characters

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// Resume messages
const (
	MsgContentTooShort = "content must be at least 150 characters"
	MsgInvalidResumeID = "resume id must be a positive integer"
	MsgNothingToUpdate = "at least one of title or content is required"
	MsgResumeDeleted   = "resume deleted"
)

// MinContentLength is the minimum résumé content length in characters
const MinContentLength = 150

// CreateResumeRequest is the body of POST /resumes
type CreateResumeRequest struct {
	Title   string `json:"title" binding:"required"`           // Title must be provided
	Content string `json:"content" binding:"required,min=150"` // At least MinContentLength characters
}

// UpdateResumeRequest is the body of PATCH /resumes/:id. Empty strings count as absent.
type UpdateResumeRequest struct {
	Title   *string `json:"title"`   // Optional new title
	Content *string `json:"content"` // Optional new content, checked in patch
}

// patch keeps the non-empty fields. Supplied content must meet MinContentLength.
func (r UpdateResumeRequest) patch() (store.ResumePatch, error) {
	var p store.ResumePatch
	if r.Title != nil && *r.Title != "" {
		p.Title = r.Title
	}
	if r.Content != nil && *r.Content != "" {
		if utf8.RuneCountInString(*r.Content) < MinContentLength {
			return store.ResumePatch{}, apperr.NewValidation(MsgContentTooShort)
		}
		p.Content = r.Content
	}
	return p, nil
}

// owner returns the authenticated user or reports an authentication error
func owner(c *gin.Context) (*domain.User, bool) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		_ = c.Error(apperr.NewAuthentication(middleware.MsgNoToken))
	}
	return user, ok
}

// resumeID parses the :id path parameter
func resumeID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		_ = c.Error(apperr.Wrap(apperr.Validation, MsgInvalidResumeID, err))
		return 0, false
	}
	return uint(id), true
}

// CreateResumeHandler creates a résumé owned by the authenticated user
func CreateResumeHandler(resumes *store.ResumeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := owner(c)
		if !ok {
			return
		}
		var req CreateResumeRequest
		if err := bindJSON(c, &req); err != nil {
			_ = c.Error(err)
			return
		}
		resume := domain.Resume{UserID: user.ID, Title: req.Title, Content: req.Content}
		if err := resumes.Create(c.Request.Context(), &resume); err != nil {
			_ = c.Error(err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"resume_id": resume.ID,
		}).Info("Resume created")
		c.JSON(http.StatusCreated, gin.H{"data": newResumeResponse(resume, user.Name)})
	}
}

// ListResumesHandler returns the authenticated user's résumés, newest first
func ListResumesHandler(resumes *store.ResumeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := owner(c)
		if !ok {
			return
		}
		list, err := resumes.ListByOwner(c.Request.Context(), user.ID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		resp := make([]ResumeResponse, len(list))
		for i, r := range list {
			resp[i] = newResumeResponse(r, r.User.Name)
		}
		c.JSON(http.StatusOK, gin.H{"data": resp})
	}
}

// GetResumeHandler returns one résumé if the authenticated user owns it
func GetResumeHandler(resumes *store.ResumeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := owner(c)
		if !ok {
			return
		}
		id, ok := resumeID(c)
		if !ok {
			return
		}
		resume, err := resumes.FindOwned(c.Request.Context(), id, user.ID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"data": newResumeResponse(*resume, resume.User.Name)})
	}
}

// UpdateResumeHandler changes the supplied fields of an owned résumé
func UpdateResumeHandler(resumes *store.ResumeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := owner(c)
		if !ok {
			return
		}
		id, ok := resumeID(c)
		if !ok {
			return
		}
		var req UpdateResumeRequest
		if err := bindJSON(c, &req); err != nil {
			_ = c.Error(err)
			return
		}
		patch, err := req.patch()
		if err != nil {
			_ = c.Error(err)
			return
		}
		ctx := c.Request.Context()
		if _, err := resumes.FindOwned(ctx, id, user.ID); err != nil {
			_ = c.Error(err)
			return
		}
		if patch.Empty() {
			_ = c.Error(apperr.NewValidation(MsgNothingToUpdate))
			return
		}
		// Ownership is re-checked inside the UPDATE; a concurrent delete yields 404
		if err := resumes.UpdateOwned(ctx, id, user.ID, patch); err != nil {
			_ = c.Error(err)
			return
		}
		updated, err := resumes.FindOwned(ctx, id, user.ID)
		if err != nil {
			_ = c.Error(err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"resume_id": id,
		}).Info("Resume updated")
		c.JSON(http.StatusOK, gin.H{"data": newResumeResponse(*updated, updated.User.Name)})
	}
}

// DeleteResumeHandler permanently removes an owned résumé
func DeleteResumeHandler(resumes *store.ResumeStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := owner(c)
		if !ok {
			return
		}
		id, ok := resumeID(c)
		if !ok {
			return
		}
		if err := resumes.DeleteOwned(c.Request.Context(), id, user.ID); err != nil {
			_ = c.Error(err)
			return
		}
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,
			"resume_id": id,
		}).Info("Resume deleted")
		c.JSON(http.StatusOK, gin.H{"message": MsgResumeDeleted, "data": gin.H{"id": id}})
	}
}
