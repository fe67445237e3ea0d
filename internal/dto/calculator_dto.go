package dto

// GPAEntry is one row of the GPA calculator form. Grade and Credit arrive as
// free text; rows that fail numeric parsing are skipped, not rejected.
type GPAEntry struct {
	Course string `json:"course"`
	Grade  string `json:"grade"`
	Credit string `json:"credit"`
}

// GPARequest describes the payload for the GPA calculator.
type GPARequest struct {
	Entries []GPAEntry `json:"entries"`
}

// GPAResponse carries the computed GPA, or null when no entry carried credits.
type GPAResponse struct {
	GPA *float64 `json:"gpa"`
}

// PredictorRequest describes the payload for the grade predictor. All numeric
// fields arrive as free text.
type PredictorRequest struct {
	CourseName  string   `json:"course_name"`
	Assignments []string `json:"assignments"`
	Mid         string   `json:"mid"`
	Final       string   `json:"final"`
}

// PredictorResponse echoes the course name and carries either the predicted
// number or the literal string "Invalid input".
type PredictorResponse struct {
	CourseName string      `json:"course_name"`
	Predicted  interface{} `json:"predicted"`
}
