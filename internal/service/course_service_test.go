package service

import (
	"context"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/gradetrack/gradetrack-api/internal/dto"
	"github.com/gradetrack/gradetrack-api/internal/models"
)

func newCourseFixture() (*memoryStore, CourseService, AssignmentService) {
	store := newMemoryStore()
	validate := validator.New(validator.WithRequiredStructEnabled())
	courses := &memoryCourseRepo{store: store}
	assignments := &memoryAssignmentRepo{store: store}
	return store,
		NewCourseService(courses, validate, testLogger()),
		NewAssignmentService(assignments, courses, validate, testLogger())
}

func TestCourseServiceCreateAndList(t *testing.T) {
	_, svc, _ := newCourseFixture()

	created, err := svc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	courses, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Calculus", courses[0].Name)
	require.Empty(t, courses[0].Assignments)
}

func TestCourseServiceListScopedToOwner(t *testing.T) {
	_, svc, _ := newCourseFixture()

	_, err := svc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), 2, dto.CourseCreateRequest{Name: "Biology", Section: "B"})
	require.NoError(t, err)

	courses, err := svc.List(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, courses, 1)
	require.Equal(t, "Calculus", courses[0].Name)
}

func TestCourseServiceCreateValidation(t *testing.T) {
	_, svc, _ := newCourseFixture()

	_, err := svc.Create(context.Background(), 1, dto.CourseCreateRequest{Section: "A"})
	require.Error(t, err)
}

func TestCourseServiceDeleteCascades(t *testing.T) {
	store, svc, assignmentSvc := newCourseFixture()

	course, err := svc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)

	_, err = assignmentSvc.Create(context.Background(), 1, dto.AssignmentCreateRequest{
		CourseID: course.ID,
		Title:    "Homework 1",
		Type:     models.AssignmentTypeHomework,
		MaxGrade: 100,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(context.Background(), 1, course.ID))
	require.Empty(t, store.courses)
	require.Empty(t, store.assignments)
}

func TestCourseServiceDeleteNotOwned(t *testing.T) {
	_, svc, _ := newCourseFixture()

	course, err := svc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), 2, course.ID), ErrCourseNotFound)
	require.ErrorIs(t, svc.Delete(context.Background(), 1, 99), ErrCourseNotFound)
}
