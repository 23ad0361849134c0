package beltrequirements

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetBeltRequirementsAPI(c *fiber.Ctx) error {
	reqs, err := database.GetAllBeltRequirements(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch belt requirements"})
	}
	return c.JSON(fiber.Map{"belt_requirements": reqs, "count": len(reqs)})
}

func GetBeltRequirementByRankAPI(c *fiber.Ctx) error {
	req, err := database.GetBeltRequirementByRank(config.GetDB(), c.Params("beltRank"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Belt rank not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch belt requirement"})
	}
	return c.JSON(fiber.Map{"belt_requirement": req})
}

// GetNextBeltRankAPI returns the requirements one step above the given rank
func GetNextBeltRankAPI(c *fiber.Ctx) error {
	req, err := database.NextBeltRank(config.GetDB(), c.Params("beltRank"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "No rank above the given one"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch next belt rank"})
	}
	return c.JSON(fiber.Map{"belt_requirement": req})
}

func CreateBeltRequirementAPI(c *fiber.Ctx) error {
	var req models.BeltRequirement
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.StructExcept(&req, "ID"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.CreateBeltRequirement(config.GetDB(), &req); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create belt requirement"})
	}
	return c.Status(201).JSON(fiber.Map{"belt_requirement": req})
}

func UpdateBeltRequirementAPI(c *fiber.Ctx) error {
	var req models.BeltRequirement
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	req.ID = c.Params("id")

	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.UpdateBeltRequirement(config.GetDB(), &req); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Belt requirement not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update belt requirement"})
	}
	return c.JSON(fiber.Map{"belt_requirement": req})
}

func DeleteBeltRequirementAPI(c *fiber.Ctx) error {
	removed, err := database.DeleteBeltRequirement(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete belt requirement"})
	}
	if !removed {
		return c.Status(404).JSON(fiber.Map{"error": "Belt requirement not found"})
	}
	return c.JSON(fiber.Map{"message": "Belt requirement deleted"})
}
