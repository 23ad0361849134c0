package assessments

import (
	"errors"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/services"
	"github.com/gofiber/fiber/v2"
)

// serviceError translates the engine's sentinel errors into HTTP responses.
func serviceError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
	case errors.Is(err, services.ErrAssessmentOpen):
		return c.Status(409).JSON(fiber.Map{"error": "Student already has an open assessment"})
	case errors.Is(err, services.ErrTerminalState):
		return c.Status(409).JSON(fiber.Map{"error": "Assessment is already completed or cancelled"})
	case errors.As(err, &ve):
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": ve.Fields})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func CreateAssessmentAPI(c *fiber.Ctx) error {
	var assessment models.StudentAssessment
	if err := c.BodyParser(&assessment); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := service.Create(&assessment)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"assessment": created})
}

func GetAssessmentsAPI(c *fiber.Ctx) error {
	var (
		list []*models.StudentAssessment
		err  error
	)
	switch {
	case c.Query("status") != "":
		list, err = service.GetAssessmentsByStatus(c.Query("status"))
	case c.Query("target_belt_rank") != "":
		list, err = service.GetAssessmentsByBeltRank(c.Query("target_belt_rank"))
	default:
		list, err = service.FindAll()
	}
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"assessments": list, "count": len(list)})
}

func GetAssessmentByIDAPI(c *fiber.Ctx) error {
	assessment, err := service.GetByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"assessment": assessment})
}

func GetAssessmentsByStudentAPI(c *fiber.Ctx) error {
	list, err := service.FindByStudentID(c.Params("studentId"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"assessments": list, "count": len(list)})
}

// GetStudentSummaryAPI aggregates one student's assessment history
func GetStudentSummaryAPI(c *fiber.Ctx) error {
	summary, err := service.GetStudentSummary(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"summary": summary})
}

func GetCurrentAssessmentAPI(c *fiber.Ctx) error {
	assessment, err := service.GetCurrentAssessment(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "No open assessment for student"})
		}
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"assessment": assessment})
}

func UpdateAssessmentAPI(c *fiber.Ctx) error {
	var fields map[string]interface{}
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if len(fields) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "No fields to update"})
	}

	assessment, err := service.Update(c.Params("id"), fields)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"assessment": assessment})
}

func CompleteAssessmentAPI(c *fiber.Ctx) error {
	var input services.CompleteInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	assessment, err := service.CompleteAssessment(c.Params("id"), input)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"assessment": assessment})
}

func CancelAssessmentAPI(c *fiber.Ctx) error {
	var body struct {
		Reason string `json:"reason"`
	}
	// An empty body is a valid cancel with no reason
	_ = c.BodyParser(&body)

	assessment, err := service.CancelAssessment(c.Params("id"), body.Reason)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"assessment": assessment})
}

func DeleteAssessmentAPI(c *fiber.Ctx) error {
	removed, err := service.Remove(c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete assessment"})
	}
	if !removed {
		return c.Status(404).JSON(fiber.Map{"error": "Assessment not found"})
	}
	return c.JSON(fiber.Map{"message": "Assessment deleted"})
}
