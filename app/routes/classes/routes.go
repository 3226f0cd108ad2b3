package classes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/models"
	"github.com/zakiachsan/ELC-sub000/app/routes/auth"
)

func SetupClassesRoutes(app *fiber.App) {
	classes := app.Group("/classes")
	classes.Use(auth.AuthMiddleware)

	classes.Get("/", ClassesPage)

	api := app.Group("/api/classes")
	api.Use(auth.AuthMiddleware)
	api.Get("/", GetClassesAPI)
	api.Post("/", auth.RoleMiddleware("admin"), CreateClassAPI)
	api.Get("/:id", GetClassAPI)
	api.Put("/:id", auth.RoleMiddleware("admin"), UpdateClassAPI)
	api.Delete("/:id", auth.RoleMiddleware("admin"), DeleteClassAPI)
}

func ClassesPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("classes/index", fiber.Map{
		"Title":       "Classes - ELC Dashboard",
		"CurrentPage": "classes",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
