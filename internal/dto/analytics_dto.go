package dto

// AssignmentPoint is one bar of a course chart. Ungraded assignments are
// charted as 0; callers needing a true average must filter them out.
type AssignmentPoint struct {
	Title string  `json:"title"`
	Grade float64 `json:"grade"`
}

// CourseChart is the per-course series consumed by the analytics frontend.
type CourseChart struct {
	Name        string            `json:"name"`
	Assignments []AssignmentPoint `json:"assignments"`
}

// OverviewSummary aggregates progress across all of a user's courses.
type OverviewSummary struct {
	TotalCourses         int     `json:"total_courses"`
	TotalAssignments     int     `json:"total_assignments"`
	CompletedAssignments int     `json:"completed_assignments"`
	CompletionRate       float64 `json:"completion_rate"`
	AverageGrade         float64 `json:"average_grade"`
}
