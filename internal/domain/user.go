package domain

import "time" // Timestamps

// RoleMember is the role assigned on sign-up
const RoleMember = "member"

// User Model
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                        // Primary key
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`  // Unique email
	Password  string    `gorm:"size:255;not null" json:"-"`                  // Hashed password, never serialized
	Name      string    `gorm:"size:100;not null" json:"name"`               // Display name
	Role      string    `gorm:"size:32;not null;default:member" json:"role"` // Role, member by default
	CreatedAt time.Time `json:"createdAt"`                                   // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt"`                                   // Last update timestamp
}
