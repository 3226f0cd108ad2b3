package tests

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/calendar"
	"github.com/zakiachsan/ELC-sub000/app/config"
	"github.com/zakiachsan/ELC-sub000/app/database"
	"github.com/zakiachsan/ELC-sub000/app/models"
)

func GetTestsAPI(c *fiber.Ctx) error {
	teacherID := c.Query("teacher_id", "")
	if teacherID == "" {
		teacherID = c.Locals("user_id").(string)
	}

	year := c.Query("year", "")
	startYear := calendar.StartYear(time.Now())
	if year != "" {
		parsed, err := calendar.ParseAcademicYear(year)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid academic year"})
		}
		startYear = parsed
	}

	tests, err := database.GetPlacementTestsForYear(config.GetDB(), teacherID, startYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to retrieve tests"})
	}

	return c.JSON(fiber.Map{"tests": tests, "count": len(tests)})
}

func CreateTestAPI(c *fiber.Ctx) error {
	var test models.PlacementTest
	if err := c.BodyParser(&test); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if test.Title == "" || test.ClassID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Title and class are required"})
	}
	if test.TestType == "" {
		test.TestType = models.TestPlacement
	}
	if test.DurationMinutes <= 0 {
		test.DurationMinutes = 60
	}
	if test.TeacherID == "" {
		test.TeacherID = c.Locals("user_id").(string)
	}

	if err := database.CreatePlacementTest(config.GetDB(), &test); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create test: " + err.Error()})
	}

	return c.Status(201).JSON(test)
}

func DeleteTestAPI(c *fiber.Ctx) error {
	testID := c.Params("id")
	if testID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Test ID is required"})
	}

	if err := database.DeletePlacementTest(config.GetDB(), testID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete test"})
	}

	return c.SendStatus(204)
}
