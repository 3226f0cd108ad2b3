package agenda

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/calendar"
	"github.com/zakiachsan/ELC-sub000/app/config"
	"github.com/zakiachsan/ELC-sub000/app/schedule"
)

// scope is the resolved root of one drill-down request. The coordinate
// itself is owned by the client; every request carries the full path so the
// server stays stateless.
type scope struct {
	TeacherID string
	StartYear int
	YearLabel string
}

func scopeFromQuery(c *fiber.Ctx) (scope, error) {
	teacherID := c.Query("teacher_id", "")
	if teacherID == "" {
		teacherID = c.Locals("user_id").(string)
	}

	startYear := calendar.StartYear(time.Now())
	if year := c.Query("year", ""); year != "" {
		parsed, err := calendar.ParseAcademicYear(year)
		if err != nil {
			return scope{}, err
		}
		startYear = parsed
	}

	return scope{
		TeacherID: teacherID,
		StartYear: startYear,
		YearLabel: calendar.AcademicYear(calendar.SemesterStart(startYear, 1)),
	}, nil
}

func semesterFromQuery(c *fiber.Ctx) (int, bool) {
	semester := c.QueryInt("semester", 0)
	if semester != 1 && semester != 2 {
		return 0, false
	}
	return semester, true
}

func categoryFromQuery(c *fiber.Ctx) (schedule.Category, bool) {
	cat := schedule.Category(c.Query("category", ""))
	for _, known := range schedule.Categories {
		if cat == known {
			return cat, true
		}
	}
	return "", false
}

// GetSemestersAPI returns item counts per semester for the selected teacher
// and academic year.
func GetSemestersAPI(c *fiber.Ctx) error {
	sc, err := scopeFromQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid academic year"})
	}

	items, err := GetAgendaItems(config.GetDB(), sc.TeacherID, sc.StartYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load agenda"})
	}

	counts := schedule.CountBySemester(items)
	return c.JSON(fiber.Map{
		"year": sc.YearLabel,
		"semesters": []fiber.Map{
			{"semester": 1, "count": counts[1]},
			{"semester": 2, "count": counts[2]},
		},
	})
}

// GetCategoriesAPI returns item counts per category within one semester.
func GetCategoriesAPI(c *fiber.Ctx) error {
	sc, err := scopeFromQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid academic year"})
	}
	semester, ok := semesterFromQuery(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Semester must be 1 or 2"})
	}

	items, err := GetAgendaItems(config.GetDB(), sc.TeacherID, sc.StartYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load agenda"})
	}

	counts := schedule.CountByCategory(schedule.FilterBySemester(items, semester))
	categories := make([]fiber.Map, 0, len(schedule.Categories))
	for _, cat := range schedule.Categories {
		categories = append(categories, fiber.Map{"category": cat, "count": counts[cat]})
	}

	return c.JSON(fiber.Map{
		"year":       sc.YearLabel,
		"semester":   semester,
		"categories": categories,
	})
}

// GetWeeksAPI returns the week groups within one semester and category,
// sorted by week number with each week's date range.
func GetWeeksAPI(c *fiber.Ctx) error {
	sc, err := scopeFromQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid academic year"})
	}
	semester, ok := semesterFromQuery(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Semester must be 1 or 2"})
	}
	category, ok := categoryFromQuery(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown category"})
	}

	items, err := GetAgendaItems(config.GetDB(), sc.TeacherID, sc.StartYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load agenda"})
	}

	scoped := schedule.FilterByCategory(schedule.FilterBySemester(items, semester), category)
	weeks := make([]fiber.Map, 0)
	for _, g := range schedule.GroupByWeek(scoped) {
		weeks = append(weeks, fiber.Map{
			"week":  g.Week,
			"count": g.Count,
			"start": g.Start.Format("2006-01-02"),
			"end":   g.End.Format("2006-01-02"),
		})
	}

	return c.JSON(fiber.Map{
		"year":     sc.YearLabel,
		"semester": semester,
		"category": category,
		"weeks":    weeks,
	})
}

// GetItemsAPI returns the chronologically ordered items of one selected week.
func GetItemsAPI(c *fiber.Ctx) error {
	sc, err := scopeFromQuery(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid academic year"})
	}
	semester, ok := semesterFromQuery(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Semester must be 1 or 2"})
	}
	category, ok := categoryFromQuery(c)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "Unknown category"})
	}
	week := c.QueryInt("week", 0)
	if week < 1 {
		return c.Status(400).JSON(fiber.Map{"error": "Week must be a positive number"})
	}

	items, err := GetAgendaItems(config.GetDB(), sc.TeacherID, sc.StartYear)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load agenda"})
	}

	scoped := schedule.FilterByCategory(schedule.FilterBySemester(items, semester), category)
	weekItems := schedule.ItemsInWeek(scoped, week)
	start, end := calendar.WeekDateRange(sc.StartYear, semester, week)

	return c.JSON(fiber.Map{
		"year":     sc.YearLabel,
		"semester": semester,
		"category": category,
		"week":     week,
		"start":    start.Format("2006-01-02"),
		"end":      end.Format("2006-01-02"),
		"items":    weekItems,
		"count":    len(weekItems),
	})
}
