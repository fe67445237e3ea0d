package models

import "time"

// Course groups the assignments a user tracks for a single class enrollment.
// UserID is set at creation and never changes afterwards.
type Course struct {
	ID          uint         `gorm:"primaryKey" json:"id"`
	Name        string       `gorm:"size:150;not null" json:"name"`
	Section     string       `gorm:"size:50" json:"section"`
	UserID      uint         `gorm:"index;not null" json:"user_id"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
	Assignments []Assignment `json:"assignments"`
}
