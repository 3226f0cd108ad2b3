package sessions

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/calendar"
	"github.com/zakiachsan/ELC-sub000/app/config"
	"github.com/zakiachsan/ELC-sub000/app/database"
	"github.com/zakiachsan/ELC-sub000/app/models"
)

func GetSessionsAPI(c *fiber.Ctx) error {
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

	sessions, err := database.GetLessonSessionsForYear(config.GetDB(), teacherID, startYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to retrieve sessions"})
	}

	return c.JSON(fiber.Map{"sessions": sessions, "count": len(sessions)})
}

func GetSessionAPI(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if sessionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Session ID is required"})
	}

	session, err := database.GetLessonSessionByID(config.GetDB(), sessionID)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.Status(404).JSON(fiber.Map{"error": "Session not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Database error"})
	}

	return c.JSON(session)
}

func CreateSessionAPI(c *fiber.Ctx) error {
	var session models.LessonSession
	if err := c.BodyParser(&session); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if session.ClassID == "" || session.Topic == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class and topic are required"})
	}
	if !session.EndsAt.After(session.StartsAt) {
		return c.Status(400).JSON(fiber.Map{"error": "End time must be after start time"})
	}
	if session.TeacherID == "" {
		session.TeacherID = c.Locals("user_id").(string)
	}

	// The program tag always follows the class, not the request
	class, err := database.GetClassByID(config.GetDB(), session.ClassID)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Class not found"})
	}
	session.Program = class.Program

	if err := database.CreateLessonSession(config.GetDB(), &session); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create session: " + err.Error()})
	}

	return c.Status(201).JSON(session)
}

func DeleteSessionAPI(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if sessionID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Session ID is required"})
	}

	if err := database.DeleteLessonSession(config.GetDB(), sessionID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete session"})
	}

	return c.SendStatus(204)
}
