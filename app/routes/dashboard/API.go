package dashboard

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/calendar"
	"github.com/zakiachsan/ELC-sub000/app/config"
	"github.com/zakiachsan/ELC-sub000/app/database"
	"github.com/zakiachsan/ELC-sub000/app/models"
	"github.com/zakiachsan/ELC-sub000/app/routes/auth"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard")
	dashboard.Use(auth.AuthMiddleware)
	dashboard.Get("/", GetDashboard)

	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)
	api.Get("/summary", GetDashboardSummaryAPI)
}

// GetDashboard handles dashboard page
func GetDashboard(c *fiber.Ctx) error {
	user := c.Locals("user").(*models.User)

	now := time.Now()
	weekStart, weekEnd := calendar.WeekDateRange(calendar.StartYear(now), calendar.Semester(now), calendar.WeekInSemester(now))

	db := config.GetDB()
	sessionsThisWeek, _ := database.CountSessionsBetween(db, weekStart, weekEnd.AddDate(0, 0, 1))

	return c.Render("dashboard/index", fiber.Map{
		"Title":            "Dashboard",
		"CurrentPage":      "dashboard",
		"FirstName":        user.FirstName,
		"LastName":         user.LastName,
		"Email":            user.Email,
		"user":             user,
		"AcademicYear":     calendar.AcademicYear(now),
		"Semester":         calendar.Semester(now),
		"Week":             calendar.WeekInSemester(now),
		"SessionsThisWeek": sessionsThisWeek,
	})
}

// GetDashboardSummaryAPI returns the calendar position and headline counts
// the dashboard cards poll for.
func GetDashboardSummaryAPI(c *fiber.Ctx) error {
	now := time.Now()
	weekStart, weekEnd := calendar.WeekDateRange(calendar.StartYear(now), calendar.Semester(now), calendar.WeekInSemester(now))

	db := config.GetDB()
	sessionsThisWeek, err := database.CountSessionsBetween(db, weekStart, weekEnd.AddDate(0, 0, 1))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load summary"})
	}

	return c.JSON(fiber.Map{
		"year":               calendar.AcademicYear(now),
		"semester":           calendar.Semester(now),
		"week":               calendar.WeekInSemester(now),
		"week_start":         weekStart.Format("2006-01-02"),
		"week_end":           weekEnd.Format("2006-01-02"),
		"sessions_this_week": sessionsThisWeek,
	})
}
