package instructors

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupInstructorsRoutes(app *fiber.App) {
	api := app.Group("/api/instructors")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetInstructorsAPI)
	api.Post("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleHeadInstructor), CreateInstructorAPI)
}
