package main

import (
	"log"
	"os"
	"time"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/assessments"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/auth"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/beltrequirements"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/dashboard"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/events"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/instructors"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/parents"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/progression"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/students"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/routes/techniques"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// apiErrorHandler renders every unhandled error as JSON
func apiErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	// Pin the application time zone so assessment and promotion dates land on
	// the dojang's calendar day
	loc, err := time.LoadLocation("America/Los_Angeles")
	if err != nil {
		log.Printf("Warning: Failed to load America/Los_Angeles location, falling back to UTC-8: %v", err)
		time.Local = time.FixedZone("PST", -8*60*60)
	} else {
		time.Local = loc
	}
	log.Printf("Application time zone set to: %s", time.Local.String())

	config.LoadEnv()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Start the nightly eligibility refresh
	services.StartScheduler(config.GetDB())

	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		if err := config.GetDB().Ping(); err != nil {
			return c.Status(503).JSON(fiber.Map{"status": "degraded", "database": "unreachable"})
		}
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Setup auth routes
	auth.SetupAuthRoutes(app)

	// Setup students routes
	students.SetupStudentsRoutes(app)

	// Setup parents routes
	parents.SetupParentsRoutes(app)

	// Setup instructors routes
	instructors.SetupInstructorsRoutes(app)

	// Setup assessment routes
	assessments.SetupAssessmentsRoutes(app)

	// Setup belt progression routes
	progression.SetupProgressionRoutes(app)

	// Setup techniques routes
	techniques.SetupTechniquesRoutes(app)

	// Setup belt requirements routes
	beltrequirements.SetupBeltRequirementsRoutes(app)

	// Setup testing events routes
	events.SetupEventsRoutes(app)

	// Setup dashboard routes
	dashboard.SetupDashboardRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	log.Println("Server starting on :" + port)
	log.Fatal(app.Listen(":" + port))
}
