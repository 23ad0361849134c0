package students

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetStudentsAPI(c *fiber.Ctx) error {
	filters := database.StudentFilters{
		Search:    c.Query("search"),
		Status:    c.Query("status"),
		BeltRank:  c.Query("belt_rank"),
		Eligible:  c.Query("eligible"),
		SortBy:    c.Query("sort_by", "last_name"),
		SortOrder: c.Query("sort_order", "asc"),
		Limit:     c.QueryInt("limit", 0),
		Offset:    c.QueryInt("offset", 0),
	}

	students, totalCount, err := database.GetStudentsWithFilters(config.GetDB(), filters)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students":    students,
		"count":       len(students),
		"total_count": totalCount,
	})
}

// GetStudentsStatsAPI returns headcounts and the belt-rank distribution
func GetStudentsStatsAPI(c *fiber.Ctx) error {
	stats, err := database.GetStudentsStats(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{
			"error":   "Failed to fetch students statistics",
			"details": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}

func GetStudentByIDAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}
	return c.JSON(fiber.Map{"student": student})
}

// GetStudentFamilyAPI returns a student's parents with their relationships
func GetStudentFamilyAPI(c *fiber.Ctx) error {
	parents, links, err := database.GetParentsForStudent(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch family"})
	}
	return c.JSON(fiber.Map{
		"parents": parents,
		"links":   links,
		"count":   len(parents),
	})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.StructExcept(&student, "ID"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student", "details": err.Error()})
	}

	return c.Status(201).JSON(fiber.Map{"student": student})
}

func UpdateStudentAPI(c *fiber.Ctx) error {
	student, err := database.GetStudentByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch student"})
	}

	// Merge the request over the stored record so omitted fields survive
	if err := c.BodyParser(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	student.ID = c.Params("id")

	if err := validate.Struct(student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.UpdateStudent(config.GetDB(), student); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update student"})
	}

	return c.JSON(fiber.Map{"student": student})
}

func DeleteStudentAPI(c *fiber.Ctx) error {
	removed, err := database.DeleteStudent(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete student"})
	}
	if !removed {
		return c.Status(404).JSON(fiber.Map{"error": "Student not found"})
	}
	return c.JSON(fiber.Map{"message": "Student deleted"})
}
