package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/gradetrack/gradetrack-api/internal/models"
)

// AssignmentRepository defines persistence operations for assignments.
// Ownership is resolved through the parent course's user.
type AssignmentRepository interface {
	GetOwned(ctx context.Context, ownerID, assignmentID uint) (models.Assignment, error)
	Create(ctx context.Context, assignment *models.Assignment) error
	Update(ctx context.Context, assignment *models.Assignment) error
	DeleteOwned(ctx context.Context, ownerID, assignmentID uint) error
}

type assignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository instantiates a GORM-backed repository.
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) GetOwned(ctx context.Context, ownerID, assignmentID uint) (models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.WithContext(ctx).
		Joins("JOIN courses ON courses.id = assignments.course_id").
		Where("assignments.id = ? AND courses.user_id = ?", assignmentID, ownerID).
		First(&assignment).Error
	if err != nil {
		return models.Assignment{}, err
	}

	return assignment, nil
}

func (r *assignmentRepository) Create(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Create(assignment).Error
}

func (r *assignmentRepository) Update(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}

func (r *assignmentRepository) DeleteOwned(ctx context.Context, ownerID, assignmentID uint) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND course_id IN (?)",
			assignmentID,
			r.db.Model(&models.Course{}).Select("id").Where("user_id = ?", ownerID),
		).
		Delete(&models.Assignment{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
