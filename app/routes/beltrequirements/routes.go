package beltrequirements

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupBeltRequirementsRoutes(app *fiber.App) {
	api := app.Group("/api/belt-requirements")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetBeltRequirementsAPI)
	api.Get("/rank/:beltRank", GetBeltRequirementByRankAPI)
	api.Get("/rank/:beltRank/next", GetNextBeltRankAPI)

	admin := auth.RoleMiddleware(models.RoleAdmin)
	api.Post("/", admin, CreateBeltRequirementAPI)
	api.Put("/:id", admin, UpdateBeltRequirementAPI)
	api.Delete("/:id", admin, DeleteBeltRequirementAPI)
}
