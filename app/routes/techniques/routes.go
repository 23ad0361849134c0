package techniques

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupTechniquesRoutes(app *fiber.App) {
	api := app.Group("/api/techniques")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetTechniquesAPI) // optional ?category= and ?belt_rank=
	api.Get("/:id", GetTechniqueByIDAPI)

	admin := auth.RoleMiddleware(models.RoleAdmin, models.RoleHeadInstructor)
	api.Post("/", admin, CreateTechniqueAPI)
	api.Put("/:id", admin, UpdateTechniqueAPI)
	api.Delete("/:id", admin, DeleteTechniqueAPI)
}
