package parents

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetParentsAPI(c *fiber.Ctx) error {
	parents, err := database.GetAllParents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch parents"})
	}
	return c.JSON(fiber.Map{
		"parents": parents,
		"count":   len(parents),
	})
}

func GetParentByIDAPI(c *fiber.Ctx) error {
	parent, err := database.GetParentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Parent not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch parent"})
	}
	return c.JSON(fiber.Map{"parent": parent})
}

// GetParentStudentsAPI lists the children linked to a parent
func GetParentStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetStudentsForParent(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}
	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}

func CreateParentAPI(c *fiber.Ctx) error {
	var parent models.Parent
	if err := c.BodyParser(&parent); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.StructExcept(&parent, "ID"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.CreateParent(config.GetDB(), &parent); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create parent"})
	}
	return c.Status(201).JSON(fiber.Map{"parent": parent})
}

func UpdateParentAPI(c *fiber.Ctx) error {
	parent, err := database.GetParentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Parent not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch parent"})
	}

	if err := c.BodyParser(parent); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	parent.ID = c.Params("id")

	if err := validate.Struct(parent); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.UpdateParent(config.GetDB(), parent); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Parent not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update parent"})
	}
	return c.JSON(fiber.Map{"parent": parent})
}

func DeleteParentAPI(c *fiber.Ctx) error {
	removed, err := database.DeleteParent(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete parent"})
	}
	if !removed {
		return c.Status(404).JSON(fiber.Map{"error": "Parent not found"})
	}
	return c.JSON(fiber.Map{"message": "Parent deleted"})
}

// LinkFamilyAPI attaches a parent to a student
func LinkFamilyAPI(c *fiber.Ctx) error {
	link := models.FamilyLink{
		ParentID:     c.Params("id"),
		StudentID:    c.Params("studentId"),
		Relationship: models.Guardian,
	}

	var body struct {
		Relationship string `json:"relationship"`
		IsPrimary    bool   `json:"is_primary"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&body); err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
		}
	}
	if body.Relationship != "" {
		switch models.RelationshipType(body.Relationship) {
		case models.Father, models.Mother, models.Guardian, models.OtherRel:
			link.Relationship = models.RelationshipType(body.Relationship)
		default:
			return c.Status(400).JSON(fiber.Map{"error": "Invalid relationship type"})
		}
	}
	link.IsPrimary = body.IsPrimary

	if err := database.LinkFamily(config.GetDB(), &link); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to link family", "details": err.Error()})
	}
	return c.Status(201).JSON(fiber.Map{"link": link})
}

func UnlinkFamilyAPI(c *fiber.Ctx) error {
	removed, err := database.UnlinkFamily(config.GetDB(), c.Params("id"), c.Params("studentId"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to unlink family"})
	}
	if !removed {
		return c.Status(404).JSON(fiber.Map{"error": "Family link not found"})
	}
	return c.JSON(fiber.Map{"message": "Family link removed"})
}
