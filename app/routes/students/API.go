package students

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/config"
	"github.com/zakiachsan/ELC-sub000/app/database"
	"github.com/zakiachsan/ELC-sub000/app/models"
)

func GetStudentsAPI(c *fiber.Ctx) error {
	classID := c.Query("class_id", "")
	search := c.Query("search", "")

	students, err := database.GetStudents(config.GetDB(), classID, search)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to retrieve students"})
	}

	return c.JSON(fiber.Map{"students": students, "count": len(students)})
}

func CreateStudentAPI(c *fiber.Ctx) error {
	var student models.Student
	if err := c.BodyParser(&student); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if strings.TrimSpace(student.FirstName) == "" || strings.TrimSpace(student.LastName) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "First and last name are required"})
	}

	if err := database.CreateStudent(config.GetDB(), &student); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create student: " + err.Error()})
	}

	return c.Status(201).JSON(student)
}
