package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gradetrack/gradetrack-api/internal/dto"
	"github.com/gradetrack/gradetrack-api/internal/models"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestAssignmentServiceCreateUngraded(t *testing.T) {
	_, courseSvc, svc := newCourseFixture()

	course, err := courseSvc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)

	assignment, err := svc.Create(context.Background(), 1, dto.AssignmentCreateRequest{
		CourseID: course.ID,
		Title:    "Homework 1",
		Type:     models.AssignmentTypeHomework,
		DueDate:  "2026-10-01",
		MaxGrade: 100,
	})
	require.NoError(t, err)
	require.Nil(t, assignment.Grade)
	require.False(t, assignment.Completed)
}

func TestAssignmentServiceCreateGradedMarksCompleted(t *testing.T) {
	_, courseSvc, svc := newCourseFixture()

	course, err := courseSvc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)

	assignment, err := svc.Create(context.Background(), 1, dto.AssignmentCreateRequest{
		CourseID: course.ID,
		Title:    "Quiz 1",
		Type:     models.AssignmentTypeQuiz,
		MaxGrade: 20,
		Grade:    floatPtr(18),
	})
	require.NoError(t, err)
	require.NotNil(t, assignment.Grade)
	require.Equal(t, 18.0, *assignment.Grade)
	require.True(t, assignment.Completed)
}

func TestAssignmentServiceCreateCourseNotOwned(t *testing.T) {
	_, courseSvc, svc := newCourseFixture()

	course, err := courseSvc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), 2, dto.AssignmentCreateRequest{
		CourseID: course.ID,
		Title:    "Homework 1",
		MaxGrade: 100,
	})
	require.ErrorIs(t, err, ErrCourseNotFound)
}

func TestAssignmentServiceSetGrade(t *testing.T) {
	_, courseSvc, svc := newCourseFixture()

	course, err := courseSvc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), 1, dto.AssignmentCreateRequest{
		CourseID: course.ID,
		Title:    "Midterm",
		Type:     models.AssignmentTypeMidterm,
		MaxGrade: 100,
	})
	require.NoError(t, err)
	require.False(t, created.Completed)

	updated, err := svc.SetGrade(context.Background(), 1, created.ID, dto.GradeUpdateRequest{Grade: floatPtr(88)})
	require.NoError(t, err)
	require.NotNil(t, updated.Grade)
	require.Equal(t, 88.0, *updated.Grade)
	require.True(t, updated.Completed)
}

func TestAssignmentServiceSetGradeOtherUsersAssignment(t *testing.T) {
	_, courseSvc, svc := newCourseFixture()

	course, err := courseSvc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), 1, dto.AssignmentCreateRequest{
		CourseID: course.ID,
		Title:    "Final",
		Type:     models.AssignmentTypeFinal,
		MaxGrade: 100,
	})
	require.NoError(t, err)

	_, err = svc.SetGrade(context.Background(), 2, created.ID, dto.GradeUpdateRequest{Grade: floatPtr(50)})
	require.ErrorIs(t, err, ErrAssignmentNotFound)
}

func TestAssignmentServiceDelete(t *testing.T) {
	store, courseSvc, svc := newCourseFixture()

	course, err := courseSvc.Create(context.Background(), 1, dto.CourseCreateRequest{Name: "Calculus", Section: "A"})
	require.NoError(t, err)

	created, err := svc.Create(context.Background(), 1, dto.AssignmentCreateRequest{
		CourseID: course.ID,
		Title:    "Homework 1",
		MaxGrade: 100,
	})
	require.NoError(t, err)

	require.ErrorIs(t, svc.Delete(context.Background(), 2, created.ID), ErrAssignmentNotFound)
	require.NoError(t, svc.Delete(context.Background(), 1, created.ID))
	require.Empty(t, store.assignments)
	require.ErrorIs(t, svc.Delete(context.Background(), 1, created.ID), ErrAssignmentNotFound)
}
