package parents

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupParentsRoutes(app *fiber.App) {
	api := app.Group("/api/parents")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetParentsAPI)
	api.Get("/:id", GetParentByIDAPI)
	api.Get("/:id/students", GetParentStudentsAPI)
	api.Post("/", CreateParentAPI)
	api.Put("/:id", UpdateParentAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin, models.RoleHeadInstructor), DeleteParentAPI)

	// Family links
	api.Post("/:id/students/:studentId", LinkFamilyAPI)
	api.Delete("/:id/students/:studentId", UnlinkFamilyAPI)
}
