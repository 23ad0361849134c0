package instructors

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func GetInstructorsAPI(c *fiber.Ctx) error {
	instructors, err := database.GetInstructors(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch instructors"})
	}
	return c.JSON(fiber.Map{
		"instructors": instructors,
		"count":       len(instructors),
	})
}

func CreateInstructorAPI(c *fiber.Ctx) error {
	type CreateInstructorRequest struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Phone     string `json:"phone"`
		Role      string `json:"role"`
	}

	var req CreateInstructorRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Email == "" || req.FirstName == "" || req.LastName == "" {
		return c.Status(400).JSON(fiber.Map{"error": "email, first_name and last_name are required"})
	}
	if len(req.Password) < 8 {
		return c.Status(400).JSON(fiber.Map{"error": "Password must be at least 8 characters"})
	}

	role := req.Role
	switch role {
	case "":
		role = models.RoleInstructor
	case models.RoleAdmin, models.RoleHeadInstructor, models.RoleInstructor:
	default:
		return c.Status(400).JSON(fiber.Map{"error": "Unknown role"})
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to hash password"})
	}

	user := models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
	}
	if err := database.CreateUser(config.GetDB(), &user, role); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create instructor", "details": err.Error()})
	}

	user.Password = ""
	return c.Status(201).JSON(fiber.Map{"instructor": user, "role": role})
}
