package students

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/models"
	"github.com/zakiachsan/ELC-sub000/app/routes/auth"
)

func SetupStudentsRoutes(app *fiber.App) {
	students := app.Group("/students")
	students.Use(auth.AuthMiddleware)

	students.Get("/", StudentsPage)

	api := app.Group("/api/students")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetStudentsAPI)
	api.Post("/", CreateStudentAPI)
}

func StudentsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("students/index", fiber.Map{
		"Title":       "Students - ELC Dashboard",
		"CurrentPage": "students",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
