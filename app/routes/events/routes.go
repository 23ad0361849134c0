package events

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/gofiber/fiber/v2"
)

func SetupEventsRoutes(app *fiber.App) {
	api := app.Group("/api/testing-events")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetTestingEventsAPI)
	api.Get("/upcoming", GetUpcomingTestingEventsAPI)

	admin := auth.RoleMiddleware(models.RoleAdmin, models.RoleHeadInstructor)
	api.Post("/", admin, CreateTestingEventAPI)
	api.Put("/:id", admin, UpdateTestingEventAPI)
	api.Delete("/:id", admin, DeleteTestingEventAPI)
}
