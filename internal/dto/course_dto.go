package dto

import (
	"time"

	"github.com/gradetrack/gradetrack-api/internal/models"
)

// CourseCreateRequest describes the payload for creating a new course.
type CourseCreateRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=150"`
	Section string `json:"section" validate:"max=50"`
}

// CourseResponse is the serialized representation returned to API clients.
type CourseResponse struct {
	ID          uint                 `json:"id"`
	Name        string               `json:"name"`
	Section     string               `json:"section"`
	Assignments []AssignmentResponse `json:"assignments"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
}

// NewCourseResponse converts a model into a DTO.
func NewCourseResponse(model models.Course) CourseResponse {
	return CourseResponse{
		ID:          model.ID,
		Name:        model.Name,
		Section:     model.Section,
		Assignments: NewAssignmentResponseSlice(model.Assignments),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

// NewCourseResponseSlice converts a slice of models into DTOs.
func NewCourseResponseSlice(courses []models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}

	return responses
}
