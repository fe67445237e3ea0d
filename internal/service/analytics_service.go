package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/gradetrack/gradetrack-api/internal/dto"
	"github.com/gradetrack/gradetrack-api/internal/models"
	"github.com/gradetrack/gradetrack-api/internal/repository"
)

// AnalyticsService produces the per-course chart data and the cross-course
// progress summary for a single user.
type AnalyticsService interface {
	Charts(ctx context.Context, ownerID uint) ([]dto.CourseChart, error)
	Summary(ctx context.Context, ownerID uint) (dto.OverviewSummary, error)
}

type analyticsService struct {
	courses  repository.CourseRepository
	cache    *redis.Client
	cacheTTL time.Duration
	logger   zerolog.Logger
}

// NewAnalyticsService builds the analytics aggregator.
func NewAnalyticsService(courses repository.CourseRepository, cache *redis.Client, ttl time.Duration, logger zerolog.Logger) AnalyticsService {
	return &analyticsService{
		courses:  courses,
		cache:    cache,
		cacheTTL: ttl,
		logger:   logger.With().Str("component", "analytics_service").Logger(),
	}
}

func (s *analyticsService) Charts(ctx context.Context, ownerID uint) ([]dto.CourseChart, error) {
	cacheKey := fmt.Sprintf("analytics:charts:%d", ownerID)
	tracer := otel.Tracer("github.com/gradetrack/gradetrack-api/internal/service/analytics")
	ctx, span := tracer.Start(ctx, "analytics.charts")
	span.SetAttributes(attribute.String("analytics.cache_key", cacheKey))
	defer span.End()

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, cacheKey).Result(); err == nil {
			var charts []dto.CourseChart
			if unmarshalErr := json.Unmarshal([]byte(cached), &charts); unmarshalErr == nil {
				span.SetAttributes(attribute.Bool("analytics.cache_hit", true))
				s.logger.Debug().Uint("user_id", ownerID).Msg("analytics cache hit")
				return charts, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read analytics cache")
			span.RecordError(err)
		}
	}

	courses, err := s.courses.ListByOwner(ctx, ownerID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "list_courses_failed")
		return nil, err
	}

	charts := buildCharts(courses)
	span.SetAttributes(attribute.Int("analytics.course_count", len(charts)))

	if s.cache != nil {
		payload, err := json.Marshal(charts)
		if err == nil {
			if err := s.cache.Set(ctx, cacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store analytics cache")
				span.RecordError(err)
			}
		}
	}

	return charts, nil
}

func (s *analyticsService) Summary(ctx context.Context, ownerID uint) (dto.OverviewSummary, error) {
	courses, err := s.courses.ListByOwner(ctx, ownerID)
	if err != nil {
		return dto.OverviewSummary{}, err
	}

	return buildSummary(courses), nil
}

// buildCharts mirrors repository order: courses by creation, assignments by
// insertion within each course. Ungraded assignments chart as 0.
func buildCharts(courses []models.Course) []dto.CourseChart {
	charts := make([]dto.CourseChart, 0, len(courses))
	for _, course := range courses {
		points := make([]dto.AssignmentPoint, 0, len(course.Assignments))
		for _, assignment := range course.Assignments {
			grade := 0.0
			if assignment.Grade != nil {
				grade = *assignment.Grade
			}
			points = append(points, dto.AssignmentPoint{
				Title: assignment.Title,
				Grade: grade,
			})
		}

		charts = append(charts, dto.CourseChart{
			Name:        course.Name,
			Assignments: points,
		})
	}

	return charts
}

func buildSummary(courses []models.Course) dto.OverviewSummary {
	summary := dto.OverviewSummary{TotalCourses: len(courses)}

	var gradeTotal float64
	var gradedCount int

	for _, course := range courses {
		for _, assignment := range course.Assignments {
			summary.TotalAssignments++
			if assignment.Completed {
				summary.CompletedAssignments++
			}
			if assignment.Grade != nil {
				gradeTotal += *assignment.Grade
				gradedCount++
			}
		}
	}

	if summary.TotalAssignments > 0 {
		summary.CompletionRate = round2(float64(summary.CompletedAssignments) / float64(summary.TotalAssignments) * 100)
	}

	if gradedCount > 0 {
		summary.AverageGrade = round2(gradeTotal / float64(gradedCount))
	}

	return summary
}
