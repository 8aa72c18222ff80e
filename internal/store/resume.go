package store

import (
	"context"                        // Request-scoped cancellation
	"resume_service/internal/apperr" // Error kinds
	"resume_service/internal/domain" // Importing domain models

	"gorm.io/gorm"        // ORM for database operations
	"gorm.io/gorm/clause" // Association clauses
)

// MsgResumeNotFound covers both missing and foreign résumés
const MsgResumeNotFound = "resume not found"

// ResumeStore persists résumés. Every read and write is scoped to an owner.
type ResumeStore struct {
	db *gorm.DB
}

// ResumePatch lists the fields an update may change. Nil fields are left as is.
type ResumePatch struct {
	Title   *string
	Content *string
}

// Empty reports whether the patch changes nothing
func (p ResumePatch) Empty() bool {
	return p.Title == nil && p.Content == nil
}

// NewResumeStore creates a ResumeStore over db
func NewResumeStore(db *gorm.DB) *ResumeStore {
	return &ResumeStore{db: db}
}

// Create inserts r. Status defaults to APPLY.
func (s *ResumeStore) Create(ctx context.Context, r *domain.Resume) error {
	if r.Status == "" {
		r.Status = domain.StatusApply // Every résumé starts in APPLY
	}
	// Never upsert the owner row through the association
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(r).Error; err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// ListByOwner returns the owner's résumés, newest first, with the owner joined
func (s *ResumeStore) ListByOwner(ctx context.Context, ownerID uint) ([]domain.Resume, error) {
	resumes := []domain.Resume{} // Encodes as [] when empty
	err := s.withOwner(ctx).
		Where("resumes.user_id = ?", ownerID).
		Order("resumes.created_at DESC").
		Order("resumes.id DESC").
		Find(&resumes).Error
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return resumes, nil
}

// FindOwned loads résumé id if ownerID owns it; otherwise apperr.NotFound
func (s *ResumeStore) FindOwned(ctx context.Context, id, ownerID uint) (*domain.Resume, error) {
	var r domain.Resume
	err := s.withOwner(ctx).
		Where("resumes.id = ? AND resumes.user_id = ?", id, ownerID).
		First(&r).Error
	if err != nil {
		return nil, notFoundOr(err, MsgResumeNotFound)
	}
	return &r, nil
}

// UpdateOwned applies patch to résumé id in a single statement guarded by the owner.
// A row removed in the meantime is reported as apperr.NotFound.
func (s *ResumeStore) UpdateOwned(ctx context.Context, id, ownerID uint, patch ResumePatch) error {
	updates := map[string]any{} // Only the supplied columns
	if patch.Title != nil {
		updates["title"] = *patch.Title
	}
	if patch.Content != nil {
		updates["content"] = *patch.Content
	}
	if len(updates) == 0 {
		return nil
	}
	res := s.db.WithContext(ctx).
		Model(&domain.Resume{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(updates)
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NewNotFound(MsgResumeNotFound) // Deleted or never owned
	}
	return nil
}

// DeleteOwned permanently removes résumé id if ownerID owns it
func (s *ResumeStore) DeleteOwned(ctx context.Context, id, ownerID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&domain.Resume{})
	if res.Error != nil {
		return apperr.Internal(res.Error)
	}
	if res.RowsAffected == 0 {
		return apperr.NewNotFound(MsgResumeNotFound)
	}
	return nil
}

func (s *ResumeStore) withOwner(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Joins("User")
}
