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

// ErrCourseNotFound indicates the course does not exist or is owned by a
// different user. The two cases are intentionally indistinguishable.
var ErrCourseNotFound = errors.New("course not found")

// CourseService exposes course domain use cases.
type CourseService interface {
	List(ctx context.Context, ownerID uint) ([]dto.CourseResponse, error)
	Create(ctx context.Context, ownerID uint, payload dto.CourseCreateRequest) (dto.CourseResponse, error)
	Delete(ctx context.Context, ownerID, courseID uint) error
}

type courseService struct {
	courses   repository.CourseRepository
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewCourseService builds a new course service.
func NewCourseService(courses repository.CourseRepository, validate *validator.Validate, logger zerolog.Logger) CourseService {
	return &courseService{
		courses:   courses,
		validator: validate,
		logger:    logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) List(ctx context.Context, ownerID uint) ([]dto.CourseResponse, error) {
	courses, err := s.courses.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	return dto.NewCourseResponseSlice(courses), nil
}

func (s *courseService) Create(ctx context.Context, ownerID uint, payload dto.CourseCreateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	course := models.Course{
		Name:    payload.Name,
		Section: payload.Section,
		UserID:  ownerID,
	}

	if err := s.courses.Create(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}

	s.logger.Info().Uint("course_id", course.ID).Uint("user_id", ownerID).Msg("course created")

	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Delete(ctx context.Context, ownerID, courseID uint) error {
	if err := s.courses.DeleteCascade(ctx, ownerID, courseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	s.logger.Info().Uint("course_id", courseID).Uint("user_id", ownerID).Msg("course and assignments deleted")
	return nil
}
