package students

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupStudentsRoutes(app *fiber.App) {
	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetStudentsAPI)           // Get all students (with filters)
	api.Get("/stats", GetStudentsStatsAPI) // Get students statistics
	api.Get("/:id", GetStudentByIDAPI)     // Get single student by ID
	api.Get("/:id/family", GetStudentFamilyAPI)
	api.Post("/", CreateStudentAPI)
	api.Put("/:id", UpdateStudentAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin, models.RoleHeadInstructor), DeleteStudentAPI)
}
