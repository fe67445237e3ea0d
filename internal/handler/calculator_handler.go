package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/gradetrack/gradetrack-api/internal/dto"
	"github.com/gradetrack/gradetrack-api/internal/service"
	"github.com/gradetrack/gradetrack-api/internal/utils"
)

// Rendered in place of a number when the predictor inputs do not parse.
const invalidInputSentinel = "Invalid input"

// CalculatorHandler wires the GPA calculator and grade predictor routes.
type CalculatorHandler struct {
	service service.CalculatorService
	logger  zerolog.Logger
}

// NewCalculatorHandler constructs the handler.
func NewCalculatorHandler(service service.CalculatorService, logger zerolog.Logger) *CalculatorHandler {
	return &CalculatorHandler{
		service: service,
		logger:  logger.With().Str("component", "calculator_handler").Logger(),
	}
}

// Register attaches calculator endpoints to the router group.
func (h *CalculatorHandler) Register(router fiber.Router) {
	router.Post("/gpa", h.gpa)
	router.Post("/predictor", h.predict)
}

func (h *CalculatorHandler) gpa(c *fiber.Ctx) error {
	var payload dto.GPARequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	return utils.SendSuccess(c, "gpa calculated", dto.GPAResponse{
		GPA: h.service.GPA(payload.Entries),
	})
}

func (h *CalculatorHandler) predict(c *fiber.Ctx) error {
	var payload dto.PredictorRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result := h.service.Predict(payload)
	response := dto.PredictorResponse{CourseName: payload.CourseName}
	if result.Valid {
		response.Predicted = result.Value
	} else {
		response.Predicted = invalidInputSentinel
	}

	return utils.SendSuccess(c, "grade predicted", response)
}
