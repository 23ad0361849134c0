package progression

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/services"
	"github.com/gofiber/fiber/v2"
)

var service *services.ProgressionService

func SetupProgressionRoutes(app *fiber.App) {
	db := config.GetDB()
	service = services.NewProgressionService(database.NewProgressionStore(db), database.NewStudentStore(db))

	api := app.Group("/api/belt-progression")
	api.Use(auth.AuthMiddleware)

	api.Post("/", auth.RoleMiddleware(models.RoleAdmin, models.RoleHeadInstructor), CreateProgressionAPI)
	api.Get("/student/:studentId/history", GetBeltHistoryAPI)
	api.Get("/student/:studentId/current", GetCurrentBeltAPI)
	api.Get("/student/:studentId", GetProgressionByStudentAPI)
	api.Get("/:id", GetProgressionByIDAPI)
	api.Patch("/:id", auth.RoleMiddleware(models.RoleAdmin, models.RoleHeadInstructor), UpdateProgressionAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin), DeleteProgressionAPI)
}
