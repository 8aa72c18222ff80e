package api

import (
	"resume_service/internal/domain" // Importing domain models
	"time"                           // Timestamps
)

// ownerResponse is the owner data embedded in a résumé
type ownerResponse struct {
	Name string `json:"name"` // Owner display name
}

// ResumeResponse represents a résumé returned to its owner
type ResumeResponse struct {
	ID        uint          `json:"id"`        // Résumé ID
	UserID    uint          `json:"userId"`    // Owner ID
	Title     string        `json:"title"`     // Title
	Content   string        `json:"content"`   // Body
	Status    string        `json:"status"`    // Application status
	CreatedAt time.Time     `json:"createdAt"` // Creation timestamp
	UpdatedAt time.Time     `json:"updatedAt"` // Last update timestamp
	User      ownerResponse `json:"user"`      // Owner name
}

func newResumeResponse(r domain.Resume, ownerName string) ResumeResponse {
	return ResumeResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Title:     r.Title,
		Content:   r.Content,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
		User:      ownerResponse{Name: ownerName},
	}
}

// UserResponse represents the authenticated user's profile
type UserResponse struct {
	ID        uint      `json:"id"`        // User ID
	Email     string    `json:"email"`     // Email
	Name      string    `json:"name"`      // Display name
	Role      string    `json:"role"`      // Role
	CreatedAt time.Time `json:"createdAt"` // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt"` // Last update timestamp
}

func newUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
