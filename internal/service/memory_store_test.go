package service

import (
	"context"
	"io"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/gradetrack/gradetrack-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// memoryStore backs the in-memory repository fakes shared by the service
// tests. Courses and assignments live together so the fakes can honour the
// ownership chain the way the real repositories do.
type memoryStore struct {
	users            map[uint]models.User
	courses          map[uint]models.Course
	assignments      map[uint]models.Assignment
	nextUserID       uint
	nextCourseID     uint
	nextAssignmentID uint
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		users:            make(map[uint]models.User),
		courses:          make(map[uint]models.Course),
		assignments:      make(map[uint]models.Assignment),
		nextUserID:       1,
		nextCourseID:     1,
		nextAssignmentID: 1,
	}
}

type memoryUserRepo struct {
	store *memoryStore
}

func (m *memoryUserRepo) Create(_ context.Context, user *models.User) error {
	for _, existing := range m.store.users {
		if existing.Username == user.Username {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = m.store.nextUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.store.users[user.ID] = *user
	m.store.nextUserID++
	return nil
}

func (m *memoryUserRepo) GetByUsername(_ context.Context, username string) (models.User, error) {
	for _, user := range m.store.users {
		if user.Username == username {
			return user, nil
		}
	}
	return models.User{}, gorm.ErrRecordNotFound
}

func (m *memoryUserRepo) GetByID(_ context.Context, id uint) (models.User, error) {
	user, ok := m.store.users[id]
	if !ok {
		return models.User{}, gorm.ErrRecordNotFound
	}
	return user, nil
}

type memoryCourseRepo struct {
	store *memoryStore
}

func (m *memoryCourseRepo) ListByOwner(_ context.Context, ownerID uint) ([]models.Course, error) {
	courses := make([]models.Course, 0)
	for _, course := range m.store.courses {
		if course.UserID != ownerID {
			continue
		}
		course.Assignments = m.assignmentsForCourse(course.ID)
		courses = append(courses, course)
	}
	sort.Slice(courses, func(i, j int) bool { return courses[i].ID < courses[j].ID })
	return courses, nil
}

func (m *memoryCourseRepo) GetOwned(_ context.Context, ownerID, courseID uint) (models.Course, error) {
	course, ok := m.store.courses[courseID]
	if !ok || course.UserID != ownerID {
		return models.Course{}, gorm.ErrRecordNotFound
	}
	return course, nil
}

func (m *memoryCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.ID = m.store.nextCourseID
	course.CreatedAt = time.Now()
	course.UpdatedAt = course.CreatedAt
	m.store.courses[course.ID] = *course
	m.store.nextCourseID++
	return nil
}

func (m *memoryCourseRepo) DeleteCascade(_ context.Context, ownerID, courseID uint) error {
	course, ok := m.store.courses[courseID]
	if !ok || course.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	for id, assignment := range m.store.assignments {
		if assignment.CourseID == courseID {
			delete(m.store.assignments, id)
		}
	}
	delete(m.store.courses, courseID)
	return nil
}

func (m *memoryCourseRepo) assignmentsForCourse(courseID uint) []models.Assignment {
	assignments := make([]models.Assignment, 0)
	for _, assignment := range m.store.assignments {
		if assignment.CourseID == courseID {
			assignments = append(assignments, assignment)
		}
	}
	sort.Slice(assignments, func(i, j int) bool { return assignments[i].ID < assignments[j].ID })
	return assignments
}

type memoryAssignmentRepo struct {
	store *memoryStore
}

func (m *memoryAssignmentRepo) GetOwned(_ context.Context, ownerID, assignmentID uint) (models.Assignment, error) {
	assignment, ok := m.store.assignments[assignmentID]
	if !ok {
		return models.Assignment{}, gorm.ErrRecordNotFound
	}
	course, ok := m.store.courses[assignment.CourseID]
	if !ok || course.UserID != ownerID {
		return models.Assignment{}, gorm.ErrRecordNotFound
	}
	return assignment, nil
}

func (m *memoryAssignmentRepo) Create(_ context.Context, assignment *models.Assignment) error {
	assignment.ID = m.store.nextAssignmentID
	assignment.CreatedAt = time.Now()
	assignment.UpdatedAt = assignment.CreatedAt
	m.store.assignments[assignment.ID] = *assignment
	m.store.nextAssignmentID++
	return nil
}

func (m *memoryAssignmentRepo) Update(_ context.Context, assignment *models.Assignment) error {
	if _, ok := m.store.assignments[assignment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	assignment.UpdatedAt = time.Now()
	m.store.assignments[assignment.ID] = *assignment
	return nil
}

func (m *memoryAssignmentRepo) DeleteOwned(_ context.Context, ownerID, assignmentID uint) error {
	assignment, ok := m.store.assignments[assignmentID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	course, ok := m.store.courses[assignment.CourseID]
	if !ok || course.UserID != ownerID {
		return gorm.ErrRecordNotFound
	}
	delete(m.store.assignments, assignmentID)
	return nil
}
