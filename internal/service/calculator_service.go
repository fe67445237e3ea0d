package service

import (
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/gradetrack/gradetrack-api/internal/dto"
)

// PredictionResult is the tagged outcome of the grade predictor. Valid is
// false when any numeric input failed to parse; malformed input is a result,
// never an error surfaced to the transport.
type PredictionResult struct {
	Value float64
	Valid bool
}

// CalculatorService exposes the pure grade calculators. Both operate on
// caller-supplied numbers only and never touch persistence.
type CalculatorService interface {
	GPA(entries []dto.GPAEntry) *float64
	Predict(payload dto.PredictorRequest) PredictionResult
}

type calculatorService struct {
	logger zerolog.Logger
}

// NewCalculatorService builds a new calculator service.
func NewCalculatorService(logger zerolog.Logger) CalculatorService {
	return &calculatorService{
		logger: logger.With().Str("component", "calculator_service").Logger(),
	}
}

// GPA computes the credit-weighted mean of the entries that parse. Entries
// with a malformed grade or credit are skipped; they never poison the rows
// that did parse. Returns nil when no parsed entry carried credits.
func (s *calculatorService) GPA(entries []dto.GPAEntry) *float64 {
	var totalPoints, totalCredits float64
	skipped := 0

	for _, entry := range entries {
		grade, gradeOK := parseNumber(entry.Grade)
		credit, creditOK := parseNumber(entry.Credit)
		if !gradeOK || !creditOK {
			skipped++
			continue
		}

		totalPoints += grade * credit
		totalCredits += credit
	}

	if skipped > 0 {
		s.logger.Debug().Int("skipped", skipped).Msg("gpa entries skipped")
	}

	if totalCredits <= 0 {
		return nil
	}

	gpa := round2(totalPoints / totalCredits)
	return &gpa
}

// Predict applies the fixed weighting: assignment average 30%, midterm 30%,
// final 40%. An empty assignment list averages to 0.
func (s *calculatorService) Predict(payload dto.PredictorRequest) PredictionResult {
	mid, ok := parseNumber(payload.Mid)
	if !ok {
		return PredictionResult{}
	}

	final, ok := parseNumber(payload.Final)
	if !ok {
		return PredictionResult{}
	}

	var sum float64
	for _, raw := range payload.Assignments {
		score, ok := parseNumber(raw)
		if !ok {
			return PredictionResult{}
		}
		sum += score
	}

	avg := 0.0
	if len(payload.Assignments) > 0 {
		avg = sum / float64(len(payload.Assignments))
	}

	return PredictionResult{
		Value: round2(avg*0.3 + mid*0.3 + final*0.4),
		Valid: true,
	}
}

func parseNumber(raw string) (float64, bool) {
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0, false
	}
	return value, true
}

// round2 rounds half-up to two decimal places.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
