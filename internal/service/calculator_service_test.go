package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gradetrack/gradetrack-api/internal/dto"
)

func TestCalculatorGPAEmptyInput(t *testing.T) {
	svc := NewCalculatorService(testLogger())

	require.Nil(t, svc.GPA(nil))
	require.Nil(t, svc.GPA([]dto.GPAEntry{}))
}

func TestCalculatorGPAWeightedAverage(t *testing.T) {
	svc := NewCalculatorService(testLogger())

	gpa := svc.GPA([]dto.GPAEntry{
		{Course: "Calculus", Grade: "90", Credit: "3"},
		{Course: "Physics", Grade: "80", Credit: "2"},
	})
	require.NotNil(t, gpa)
	require.Equal(t, 86.0, *gpa)
}

func TestCalculatorGPASkipsMalformedEntries(t *testing.T) {
	svc := NewCalculatorService(testLogger())

	gpa := svc.GPA([]dto.GPAEntry{
		{Course: "Calculus", Grade: "x", Credit: "3"},
		{Course: "Physics", Grade: "80", Credit: "2"},
	})
	require.NotNil(t, gpa)
	require.Equal(t, 80.0, *gpa)

	gpa = svc.GPA([]dto.GPAEntry{
		{Course: "Physics", Grade: "80", Credit: ""},
	})
	require.Nil(t, gpa)
}

func TestCalculatorGPARoundsToTwoDecimals(t *testing.T) {
	svc := NewCalculatorService(testLogger())

	gpa := svc.GPA([]dto.GPAEntry{
		{Grade: "85", Credit: "3"},
		{Grade: "92", Credit: "4"},
		{Grade: "78", Credit: "2"},
	})
	require.NotNil(t, gpa)
	// (85*3 + 92*4 + 78*2) / 9 = 779/9 = 86.555...
	require.Equal(t, 86.56, *gpa)
}

func TestCalculatorPredictWithoutAssignments(t *testing.T) {
	svc := NewCalculatorService(testLogger())

	result := svc.Predict(dto.PredictorRequest{Mid: "70", Final: "80"})
	require.True(t, result.Valid)
	require.Equal(t, 53.0, result.Value)
}

func TestCalculatorPredictWeighting(t *testing.T) {
	svc := NewCalculatorService(testLogger())

	result := svc.Predict(dto.PredictorRequest{
		Assignments: []string{"90", "80"},
		Mid:         "70",
		Final:       "60",
	})
	require.True(t, result.Valid)
	// 85*0.3 + 70*0.3 + 60*0.4 = 70.5
	require.Equal(t, 70.5, result.Value)
}

func TestCalculatorPredictInvalidInput(t *testing.T) {
	svc := NewCalculatorService(testLogger())

	result := svc.Predict(dto.PredictorRequest{
		Assignments: []string{"bad"},
		Mid:         "70",
		Final:       "80",
	})
	require.False(t, result.Valid)

	result = svc.Predict(dto.PredictorRequest{Mid: "", Final: "80"})
	require.False(t, result.Valid)
}
