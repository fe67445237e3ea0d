package models

import "time"

// Conventional assignment type tags. The column is free text; these are the
// values the frontend offers, not a closed set.
const (
	AssignmentTypeHomework = "Assignment"
	AssignmentTypeQuiz     = "Quiz"
	AssignmentTypeMidterm  = "Mid"
	AssignmentTypeFinal    = "Final"
)

// Assignment is a single graded item inside a course. Grade is nil while the
// item is ungraded; Completed always mirrors whether a grade has been written.
type Assignment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:150;not null" json:"title"`
	Type      string    `gorm:"size:50" json:"type"`
	DueDate   string    `gorm:"size:50" json:"due_date"`
	MaxGrade  float64   `gorm:"not null" json:"max_grade"`
	Grade     *float64  `json:"grade"`
	Completed bool      `gorm:"not null;default:false" json:"completed"`
	CourseID  uint      `gorm:"index;not null" json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SetGrade writes the grade and recomputes the completion flag. Completed is
// never set independently; every grade write goes through here.
func (a *Assignment) SetGrade(grade *float64) {
	a.Grade = grade
	a.Completed = grade != nil
}
