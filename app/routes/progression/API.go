package progression

import (
	"errors"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/services"
	"github.com/gofiber/fiber/v2"
)

func serviceError(c *fiber.Ctx, err error) error {
	var ve *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		return c.Status(404).JSON(fiber.Map{"error": "Progression record not found"})
	case errors.As(err, &ve):
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "fields": ve.Fields})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}

func CreateProgressionAPI(c *fiber.Ctx) error {
	var rec models.BeltProgression
	if err := c.BodyParser(&rec); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	created, err := service.Create(&rec)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(201).JSON(fiber.Map{"progression": created})
}

func GetProgressionByIDAPI(c *fiber.Ctx) error {
	rec, err := service.GetByID(c.Params("id"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"progression": rec})
}

func GetProgressionByStudentAPI(c *fiber.Ctx) error {
	list, err := service.FindByStudentID(c.Params("studentId"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"progression": list, "count": len(list)})
}

// GetBeltHistoryAPI returns the full promotion ledger plus tenure on the
// current belt
func GetBeltHistoryAPI(c *fiber.Ctx) error {
	history, err := service.GetBeltHistory(c.Params("studentId"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"history": history})
}

func GetCurrentBeltAPI(c *fiber.Ctx) error {
	rec, err := service.GetCurrentBelt(c.Params("studentId"))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Student has no current belt record"})
		}
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"progression": rec})
}

func UpdateProgressionAPI(c *fiber.Ctx) error {
	var patch models.BeltProgressionPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	rec, err := service.Update(c.Params("id"), &patch)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(fiber.Map{"progression": rec})
}

func DeleteProgressionAPI(c *fiber.Ctx) error {
	removed, err := service.Remove(c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete progression record"})
	}
	if !removed {
		return c.Status(404).JSON(fiber.Map{"error": "Progression record not found"})
	}
	return c.JSON(fiber.Map{"message": "Progression record deleted"})
}
