package dto

import (
	"time"

	"github.com/gradetrack/gradetrack-api/internal/models"
)

// AssignmentCreateRequest describes the payload for adding an assignment to a
// course. Grade is optional; supplying it marks the assignment completed.
type AssignmentCreateRequest struct {
	CourseID uint     `json:"course_id" validate:"required"`
	Title    string   `json:"title" validate:"required,min=1,max=150"`
	Type     string   `json:"type" validate:"max=50"`
	DueDate  string   `json:"due_date" validate:"max=50"`
	MaxGrade float64  `json:"max_grade" validate:"required,gt=0"`
	Grade    *float64 `json:"grade" validate:"omitempty,gte=0"`
}

// GradeUpdateRequest describes the payload for recording a grade. There is no
// operation to clear a grade once set.
type GradeUpdateRequest struct {
	Grade *float64 `json:"grade" validate:"required,gte=0"`
}

// AssignmentResponse is the serialized representation returned to API clients.
type AssignmentResponse struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Type      string    `json:"type"`
	DueDate   string    `json:"due_date"`
	MaxGrade  float64   `json:"max_grade"`
	Grade     *float64  `json:"grade"`
	Completed bool      `json:"completed"`
	CourseID  uint      `json:"course_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAssignmentResponse converts a model into a DTO.
func NewAssignmentResponse(model models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:        model.ID,
		Title:     model.Title,
		Type:      model.Type,
		DueDate:   model.DueDate,
		MaxGrade:  model.MaxGrade,
		Grade:     model.Grade,
		Completed: model.Completed,
		CourseID:  model.CourseID,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewAssignmentResponseSlice converts a slice of models into DTOs.
func NewAssignmentResponseSlice(assignments []models.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment))
	}

	return responses
}
