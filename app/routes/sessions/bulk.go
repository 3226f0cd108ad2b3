package sessions

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/zakiachsan/ELC-sub000/app/config"
	"github.com/zakiachsan/ELC-sub000/app/database"
	"github.com/zakiachsan/ELC-sub000/app/models"
	"github.com/zakiachsan/ELC-sub000/app/schedule"
)

var validate = validator.New()

type BulkAssignment struct {
	ClassID   string `json:"class_id" validate:"required,uuid"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

type BulkCreateRequest struct {
	TeacherID   string              `json:"teacher_id" validate:"omitempty,uuid"`
	Dates       []models.CustomDate `json:"dates" validate:"required,min=1"`
	Assignments []BulkAssignment    `json:"assignments" validate:"required,min=1,dive"`
	Topic       string              `json:"topic" validate:"required"`
	Description string              `json:"description"`
	Skills      []string            `json:"skills"`
	CEFRLevel   string              `json:"cefr_level"`
	LessonPlan  string              `json:"lesson_plan"`
	Materials   []string            `json:"materials"`
}

// BulkCreateSessionsAPI expands the selected dates and class rows into one
// session per (date, class) pair and persists them one by one. Each entry
// gets its own result row so the client can tell exactly which pairs failed;
// there is no rollback of siblings.
func BulkCreateSessionsAPI(c *fiber.Ctx) error {
	var req BulkCreateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	if req.TeacherID == "" {
		req.TeacherID = c.Locals("user_id").(string)
	}

	db := config.GetDB()

	classIDs := make([]string, len(req.Assignments))
	for i, a := range req.Assignments {
		classIDs[i] = a.ClassID
	}
	classes, err := database.GetClassesByIDs(db, classIDs)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load classes"})
	}

	assignments := make([]schedule.Assignment, len(req.Assignments))
	for i, a := range req.Assignments {
		class, ok := classes[a.ClassID]
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "Class not found: " + a.ClassID})
		}
		assignments[i] = schedule.Assignment{
			ClassID:   class.ID,
			ClassName: class.Name,
			ClassCode: class.Code,
			Program:   string(class.Program),
			StartTime: a.StartTime,
			EndTime:   a.EndTime,
		}
	}

	dates := make([]time.Time, len(req.Dates))
	for i, d := range req.Dates {
		dates[i] = d.Time
	}

	requests, err := schedule.Expand(dates, assignments, schedule.Payload{
		Topic:       req.Topic,
		Description: req.Description,
		Skills:      req.Skills,
		CEFRLevel:   req.CEFRLevel,
		LessonPlan:  req.LessonPlan,
		Materials:   req.Materials,
	})
	if err != nil {
		// Expansion is all-or-nothing; a bad row rejects the batch up front
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	batchID := uuid.New().String()
	results := make([]fiber.Map, 0, len(requests))
	created := 0

	for _, r := range requests {
		session := &models.LessonSession{
			ClassID:     r.ClassID,
			TeacherID:   req.TeacherID,
			Topic:       r.Payload.Topic,
			Description: r.Payload.Description,
			Skills:      r.Payload.Skills,
			CEFRLevel:   r.Payload.CEFRLevel,
			LessonPlan:  r.Payload.LessonPlan,
			Materials:   r.Payload.Materials,
			Program:     models.Program(r.Program),
			StartsAt:    r.StartsAt,
			EndsAt:      r.EndsAt,
			BatchID:     &batchID,
		}

		result := fiber.Map{
			"date":     r.Date.Format("2006-01-02"),
			"class_id": r.ClassID,
			"class":    r.ClassName,
		}
		if err := database.CreateLessonSession(db, session); err != nil {
			log.Printf("Bulk create failed for %s / %s: %v", result["date"], r.ClassName, err)
			result["ok"] = false
			result["error"] = err.Error()
		} else {
			result["ok"] = true
			result["session_id"] = session.ID
			created++
		}
		results = append(results, result)
	}

	status := 201
	if created < len(requests) {
		status = 207 // partial success, per-entry details below
	}

	return c.Status(status).JSON(fiber.Map{
		"batch_id": batchID,
		"expected": len(requests),
		"created":  created,
		"results":  results,
	})
}
