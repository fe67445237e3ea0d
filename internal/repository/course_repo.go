package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gradetrack/gradetrack-api/internal/models"
)

// CourseRepository defines persistence operations for courses. Every read and
// mutation is scoped to the owning user; a course belonging to someone else
// behaves exactly like a missing one.
type CourseRepository interface {
	ListByOwner(ctx context.Context, ownerID uint) ([]models.Course, error)
	GetOwned(ctx context.Context, ownerID, courseID uint) (models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	DeleteCascade(ctx context.Context, ownerID, courseID uint) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository instantiates a GORM-backed repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func (r *courseRepository) ListByOwner(ctx context.Context, ownerID uint) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Preload("Assignments", func(db *gorm.DB) *gorm.DB {
			return db.Order("assignments.id ASC")
		}).
		Order("id ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) GetOwned(ctx context.Context, ownerID, courseID uint) (models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", courseID, ownerID).
		First(&course).Error
	if err != nil {
		return models.Course{}, err
	}

	return course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// DeleteCascade removes the course and all of its assignments in one
// transaction. Concurrent readers observe either the full course or nothing.
func (r *courseRepository) DeleteCascade(ctx context.Context, ownerID, courseID uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := tx.Where("id = ? AND user_id = ?", courseID, ownerID).First(&course).Error; err != nil {
			return err
		}

		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}

		return tx.Delete(&course).Error
	})
}
