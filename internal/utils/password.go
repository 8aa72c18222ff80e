package utils

import (
	"errors"                         // Error classification
	"fmt"                            // Error wrapping
	"resume_service/internal/apperr" // Error kinds

	"golang.org/x/crypto/bcrypt" // Password hashing
)

// PasswordCost is the bcrypt work factor for stored passwords
const PasswordCost = 10

// MaxPasswordBytes is the longest password bcrypt accepts
const MaxPasswordBytes = 72

// MsgPasswordTooLong is returned when a password exceeds MaxPasswordBytes
const MsgPasswordTooLong = "password must be at most 72 bytes"

// HashPassword returns the bcrypt hash of password. A password longer than
// MaxPasswordBytes is a Validation error.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", apperr.Wrap(apperr.Validation, MsgPasswordTooLong, err)
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// CheckPassword reports whether password matches hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
