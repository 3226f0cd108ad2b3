package classes

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/config"
	"github.com/zakiachsan/ELC-sub000/app/database"
	"github.com/zakiachsan/ELC-sub000/app/models"
)

func GetClassesAPI(c *fiber.Ctx) error {
	db := config.GetDB()

	classes, err := database.GetActiveClasses(db)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to retrieve classes"})
	}

	for _, class := range classes {
		if count, err := database.GetClassStudentCount(db, class.ID); err == nil {
			class.StudentCount = count
		}
	}

	return c.JSON(fiber.Map{"classes": classes, "count": len(classes)})
}

func GetClassAPI(c *fiber.Ctx) error {
	classID := c.Params("id")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID is required"})
	}

	class, err := database.GetClassByID(config.GetDB(), classID)
	if err != nil {
		return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
	}

	return c.JSON(class)
}

func CreateClassAPI(c *fiber.Ctx) error {
	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if strings.TrimSpace(class.Name) == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class name is required"})
	}
	if class.Program == "" {
		class.Program = models.ProgramRegular
	}
	if class.Program != models.ProgramBilingual && class.Program != models.ProgramRegular {
		return c.Status(400).JSON(fiber.Map{"error": "Program must be bilingual or regular"})
	}
	if class.Code == "" {
		class.Code = GenerateClassCode(class.Name, class.Program)
	}

	if err := database.CreateClass(config.GetDB(), &class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create class: " + err.Error()})
	}

	return c.Status(201).JSON(class)
}

func UpdateClassAPI(c *fiber.Ctx) error {
	classID := c.Params("id")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID is required"})
	}

	var class models.Class
	if err := c.BodyParser(&class); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	class.ID = classID

	if class.Program != "" && class.Program != models.ProgramBilingual && class.Program != models.ProgramRegular {
		return c.Status(400).JSON(fiber.Map{"error": "Program must be bilingual or regular"})
	}

	if err := database.UpdateClass(config.GetDB(), &class); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update class"})
	}

	return c.JSON(class)
}

func DeleteClassAPI(c *fiber.Ctx) error {
	classID := c.Params("id")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID is required"})
	}

	db := config.GetDB()
	count, err := database.GetClassStudentCount(db, classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to check class students"})
	}
	if count > 0 {
		return c.Status(400).JSON(fiber.Map{"error": "Cannot delete a class that still has students"})
	}

	if err := database.DeleteClass(db, classID); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendStatus(204)
}

// GenerateClassCode builds a code like BIL-INTER or REG-KIDSA from the class
// name and program.
func GenerateClassCode(name string, program models.Program) string {
	prefix := "REG"
	if program == models.ProgramBilingual {
		prefix = "BIL"
	}
	cleanName := strings.ToUpper(strings.ReplaceAll(name, " ", ""))
	if len(cleanName) > 5 {
		cleanName = cleanName[:5]
	}
	return prefix + "-" + cleanName
}
