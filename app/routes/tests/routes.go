package tests

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/models"
	"github.com/zakiachsan/ELC-sub000/app/routes/auth"
)

func SetupTestsRoutes(app *fiber.App) {
	tests := app.Group("/tests")
	tests.Use(auth.AuthMiddleware)

	tests.Get("/", TestsPage)

	api := app.Group("/api/tests")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetTestsAPI)
	api.Post("/", CreateTestAPI)
	api.Delete("/:id", DeleteTestAPI)
}

func TestsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("tests/index", fiber.Map{
		"Title":       "Tests - ELC Dashboard",
		"CurrentPage": "tests",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
