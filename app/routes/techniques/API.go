package techniques

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetTechniquesAPI(c *fiber.Ctx) error {
	category := c.Query("category")
	if category != "" && !models.ValidTechniqueCategory(category) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown technique category"})
	}

	techniques, err := database.GetTechniques(config.GetDB(), category, c.Query("belt_rank"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch techniques"})
	}
	return c.JSON(fiber.Map{"techniques": techniques, "count": len(techniques)})
}

func GetTechniqueByIDAPI(c *fiber.Ctx) error {
	technique, err := database.GetTechniqueByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Technique not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch technique"})
	}
	return c.JSON(fiber.Map{"technique": technique})
}

func CreateTechniqueAPI(c *fiber.Ctx) error {
	var technique models.Technique
	if err := c.BodyParser(&technique); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.StructExcept(&technique, "ID"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}
	if !models.ValidTechniqueCategory(string(technique.Category)) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown technique category"})
	}

	if err := database.CreateTechnique(config.GetDB(), &technique); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create technique"})
	}
	return c.Status(201).JSON(fiber.Map{"technique": technique})
}

func UpdateTechniqueAPI(c *fiber.Ctx) error {
	technique, err := database.GetTechniqueByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Technique not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch technique"})
	}

	if err := c.BodyParser(technique); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	technique.ID = c.Params("id")

	if err := validate.Struct(technique); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}
	if !models.ValidTechniqueCategory(string(technique.Category)) {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown technique category"})
	}

	if err := database.UpdateTechnique(config.GetDB(), technique); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Technique not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update technique"})
	}
	return c.JSON(fiber.Map{"technique": technique})
}

func DeleteTechniqueAPI(c *fiber.Ctx) error {
	removed, err := database.DeleteTechnique(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete technique"})
	}
	if !removed {
		return c.Status(404).JSON(fiber.Map{"error": "Technique not found"})
	}
	return c.JSON(fiber.Map{"message": "Technique deleted"})
}
