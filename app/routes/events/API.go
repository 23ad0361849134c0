package events

import (
	"database/sql"

	"github.com/Nerotas/ToughNoseKarate-sub000/app/config"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/database"
	"github.com/Nerotas/ToughNoseKarate-sub000/app/models"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

func GetTestingEventsAPI(c *fiber.Ctx) error {
	events, err := database.GetTestingEvents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch testing events"})
	}
	return c.JSON(fiber.Map{"events": events, "count": len(events)})
}

func GetUpcomingTestingEventsAPI(c *fiber.Ctx) error {
	events, err := database.GetUpcomingTestingEvents(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch upcoming events"})
	}
	return c.JSON(fiber.Map{"events": events, "count": len(events)})
}

func CreateTestingEventAPI(c *fiber.Ctx) error {
	var event models.TestingEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validate.StructExcept(&event, "ID"); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.CreateTestingEvent(config.GetDB(), &event); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create testing event"})
	}
	return c.Status(201).JSON(fiber.Map{"event": event})
}

func UpdateTestingEventAPI(c *fiber.Ctx) error {
	var event models.TestingEvent
	if err := c.BodyParser(&event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	event.ID = c.Params("id")

	if err := validate.Struct(&event); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Validation failed", "details": err.Error()})
	}

	if err := database.UpdateTestingEvent(config.GetDB(), &event); err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Testing event not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update testing event"})
	}
	return c.JSON(fiber.Map{"event": event})
}

func DeleteTestingEventAPI(c *fiber.Ctx) error {
	removed, err := database.DeleteTestingEvent(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete testing event"})
	}
	if !removed {
		return c.Status(404).JSON(fiber.Map{"error": "Testing event not found"})
	}
	return c.JSON(fiber.Map{"message": "Testing event deleted"})
}
