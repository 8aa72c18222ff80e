package store

import (
	"context"                        // Request-scoped cancellation
	"errors"                         // Error classification
	"resume_service/internal/apperr" // Error kinds
	"resume_service/internal/domain" // Importing domain models

	"gorm.io/gorm" // ORM for database operations
)

// Messages for user store failures
const (
	MsgEmailTaken   = "email is already registered"
	MsgUserNotFound = "user not found"
)

// UserStore persists users
type UserStore struct {
	db *gorm.DB
}

// NewUserStore creates a UserStore over db
func NewUserStore(db *gorm.DB) *UserStore {
	return &UserStore{db: db}
}

// Create inserts u. A taken email is reported as apperr.Duplicate.
func (s *UserStore) Create(ctx context.Context, u *domain.User) error {
	if u.Role == "" {
		u.Role = domain.RoleMember // New accounts are plain members
	}
	if err := s.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) { // Unique email index, translated by gorm
			return apperr.Wrap(apperr.Duplicate, MsgEmailTaken, err)
		}
		return apperr.Internal(err)
	}
	return nil
}

// ExistsByEmail reports whether a user with email is registered
func (s *UserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64 // Matching rows
	if err := s.db.WithContext(ctx).Model(&domain.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, apperr.Internal(err)
	}
	return count > 0, nil
}

// FindByEmail loads a user by email
func (s *UserStore) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		return nil, notFoundOr(err, MsgUserNotFound)
	}
	return &u, nil
}

// FindByID loads a user by primary key
func (s *UserStore) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var u domain.User
	if err := s.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFoundOr(err, MsgUserNotFound)
	}
	return &u, nil
}

func notFoundOr(err error, msg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Wrap(apperr.NotFound, msg, err)
	}
	return apperr.Internal(err)
}
