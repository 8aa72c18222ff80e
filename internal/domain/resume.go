package domain

import "time" // Timestamps

// StatusApply is the status of a newly created résumé
const StatusApply = "APPLY"

// Resume Model
type Resume struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                   // Primary key
	UserID    uint      `gorm:"index;not null" json:"userId"`                           // Foreign key to the owning User
	User      User      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"` // Owner, loaded by joins only
	Title     string    `gorm:"size:255;not null" json:"title"`                         // Résumé title
	Content   string    `gorm:"type:text;not null" json:"content"`                      // Free text body
	Status    string    `gorm:"size:32;not null;default:APPLY" json:"status"`           // Application status
	CreatedAt time.Time `json:"createdAt"`                                              // Creation timestamp
	UpdatedAt time.Time `json:"updatedAt"`                                              // Last update timestamp
}
