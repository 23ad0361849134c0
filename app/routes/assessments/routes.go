package assessments

import (
	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/services"
	"github.com/gofiber/fiber/v2"
)

var service *services.AssessmentService

func SetupAssessmentsRoutes(app *fiber.App) {
	db := config.GetDB()
	service = services.NewAssessmentService(database.NewAssessmentStore(db), database.NewStudentStore(db))

	api := app.Group("/api/student-assessments")
	api.Use(auth.AuthMiddleware)

	api.Get("/", GetAssessmentsAPI) // optional ?status= or ?target_belt_rank=
	api.Post("/", CreateAssessmentAPI)
	api.Get("/student/:studentId", GetAssessmentsByStudentAPI)
	api.Get("/student/:studentId/summary", GetStudentSummaryAPI)
	api.Get("/student/:studentId/current", GetCurrentAssessmentAPI)
	api.Patch("/:id/complete", CompleteAssessmentAPI)
	api.Patch("/:id/cancel", CancelAssessmentAPI)
	api.Get("/:id", GetAssessmentByIDAPI)
	api.Patch("/:id", UpdateAssessmentAPI)
	api.Delete("/:id", auth.RoleMiddleware(models.RoleAdmin, models.RoleHeadInstructor), DeleteAssessmentAPI)
}
