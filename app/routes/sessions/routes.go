package sessions

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/models"
	"github.com/zakiachsan/ELC-sub000/app/routes/auth"
)

func SetupSessionsRoutes(app *fiber.App) {
	sessions := app.Group("/sessions")
	sessions.Use(auth.AuthMiddleware)

	sessions.Get("/", SessionsPage)

	api := app.Group("/api/sessions")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetSessionsAPI)
	api.Post("/", CreateSessionAPI)
	api.Post("/bulk", BulkCreateSessionsAPI)
	api.Get("/:id", GetSessionAPI)
	api.Delete("/:id", DeleteSessionAPI)
}

func SessionsPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("sessions/index", fiber.Map{
		"Title":       "Lesson Sessions - ELC Dashboard",
		"CurrentPage": "sessions",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
