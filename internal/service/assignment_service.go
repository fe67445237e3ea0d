package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gradetrack/gradetrack-api/internal/dto"
	"github.com/gradetrack/gradetrack-api/internal/models"
	"github.com/gradetrack/gradetrack-api/internal/repository"
)

// ErrAssignmentNotFound indicates the assignment does not exist or belongs to
// a course owned by a different user.
var ErrAssignmentNotFound = errors.New("assignment not found")

// AssignmentService exposes assignment domain use cases.
type AssignmentService interface {
	Create(ctx context.Context, ownerID uint, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error)
	SetGrade(ctx context.Context, ownerID, assignmentID uint, payload dto.GradeUpdateRequest) (dto.AssignmentResponse, error)
	Delete(ctx context.Context, ownerID, assignmentID uint) error
}

type assignmentService struct {
	assignments repository.AssignmentRepository
	courses     repository.CourseRepository
	validator   *validator.Validate
	logger      zerolog.Logger
}

// NewAssignmentService builds a new assignment service.
func NewAssignmentService(assignments repository.AssignmentRepository, courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		assignments: assignments,
		courses:     courses,
		validator:   validate,
		logger:      logger.With().Str("component", "assignment_service").Logger(),
	}
}

func (s *assignmentService) Create(ctx context.Context, ownerID uint, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	course, err := s.courses.GetOwned(ctx, ownerID, payload.CourseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrCourseNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	assignment := models.Assignment{
		Title:    payload.Title,
		Type:     payload.Type,
		DueDate:  payload.DueDate,
		MaxGrade: payload.MaxGrade,
		CourseID: course.ID,
	}
	assignment.SetGrade(payload.Grade)

	if err := s.assignments.Create(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().
		Uint("assignment_id", assignment.ID).
		Uint("course_id", course.ID).
		Bool("completed", assignment.Completed).
		Msg("assignment created")

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) SetGrade(ctx context.Context, ownerID, assignmentID uint, payload dto.GradeUpdateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	assignment, err := s.assignments.GetOwned(ctx, ownerID, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	assignment.SetGrade(payload.Grade)

	if err := s.assignments.Update(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.logger.Info().Uint("assignment_id", assignment.ID).Msg("grade recorded")

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) Delete(ctx context.Context, ownerID, assignmentID uint) error {
	if err := s.assignments.DeleteOwned(ctx, ownerID, assignmentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}

	s.logger.Info().Uint("assignment_id", assignmentID).Msg("assignment deleted")
	return nil
}
