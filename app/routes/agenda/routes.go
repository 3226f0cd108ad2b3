package agenda

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/models"
	"github.com/zakiachsan/ELC-sub000/app/routes/auth"
)

// The agenda is the drill-down view over everything a teacher has scheduled:
// Teacher -> Semester -> Category -> Week -> Items.
func SetupAgendaRoutes(app *fiber.App) {
	agenda := app.Group("/agenda")
	agenda.Use(auth.AuthMiddleware)

	agenda.Get("/", AgendaPage)

	api := app.Group("/api/agenda")
	api.Use(auth.AuthMiddleware)
	api.Get("/semesters", GetSemestersAPI)
	api.Get("/categories", GetCategoriesAPI)
	api.Get("/weeks", GetWeeksAPI)
	api.Get("/items", GetItemsAPI)
}

func AgendaPage(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)
	return c.Render("agenda/index", fiber.Map{
		"Title":       "Agenda - ELC Dashboard",
		"CurrentPage": "agenda",
		"user":        user,
		"FirstName":   user.FirstName,
		"LastName":    user.LastName,
		"Email":       user.Email,
	})
}
