package schedule

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Program tags applied to expanded schedule entries.
const (
	ProgramBilingual = "bilingual"
	ProgramRegular   = "regular"
)

var (
	ErrNoDates       = errors.New("no dates selected")
	ErrNoAssignments = errors.New("no class assignments")
)

// Assignment pairs a class with its time window for one bulk row. Assignment
// order is significant: the bulk form copies times from the previous row, so
// expansion keeps rows in the order supplied.
type Assignment struct {
	ClassID   string `json:"class_id" validate:"required"`
	ClassName string `json:"class_name"`
	ClassCode string `json:"class_code"`
	Program   string `json:"program"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// Payload carries the fields shared verbatim by every expanded entry.
type Payload struct {
	Topic       string   `json:"topic"`
	Description string   `json:"description"`
	Skills      []string `json:"skills"`
	CEFRLevel   string   `json:"cefr_level"`
	LessonPlan  string   `json:"lesson_plan"`
	Materials   []string `json:"materials"`
}

// Request is one concrete schedule-creation request produced by Expand.
type Request struct {
	Date      time.Time `json:"date"`
	ClassID   string    `json:"class_id"`
	ClassName string    `json:"class_name"`
	Program   string    `json:"program"`
	StartsAt  time.Time `json:"starts_at"`
	EndsAt    time.Time `json:"ends_at"`
	Payload   Payload   `json:"payload"`
}

func parseClock(s string) (int, int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid time %q", s)
	}
	return t.Hour(), t.Minute(), nil
}

// programFor derives the schedule type tag for an assignment: the class
// program when known, otherwise a BIL marker in the class code.
func programFor(a Assignment) string {
	if a.Program == ProgramBilingual {
		return ProgramBilingual
	}
	if a.Program == "" && strings.Contains(strings.ToUpper(a.ClassCode), "BIL") {
		return ProgramBilingual
	}
	return ProgramRegular
}

// Expand produces one concrete request per (date, assignment) pair.
// Validation runs first and any bad time window rejects the whole batch; no
// partial list is ever returned. Dates are expanded in ascending order,
// assignments in caller order, so output position identifies which pair a
// later persistence failure belongs to.
func Expand(dates []time.Time, assignments []Assignment, payload Payload) ([]Request, error) {
	if len(dates) == 0 {
		return nil, ErrNoDates
	}
	if len(assignments) == 0 {
		return nil, ErrNoAssignments
	}

	type window struct{ sh, sm, eh, em int }
	windows := make([]window, len(assignments))
	for i, a := range assignments {
		if a.StartTime == "" || a.EndTime == "" {
			return nil, fmt.Errorf("assignment %s: start and end time are required", a.ClassID)
		}
		sh, sm, err := parseClock(a.StartTime)
		if err != nil {
			return nil, fmt.Errorf("assignment %s: %w", a.ClassID, err)
		}
		eh, em, err := parseClock(a.EndTime)
		if err != nil {
			return nil, fmt.Errorf("assignment %s: %w", a.ClassID, err)
		}
		if eh*60+em <= sh*60+sm {
			return nil, fmt.Errorf("assignment %s: end time %s is not after start time %s", a.ClassID, a.EndTime, a.StartTime)
		}
		windows[i] = window{sh, sm, eh, em}
	}

	sorted := make([]time.Time, len(dates))
	copy(sorted, dates)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	out := make([]Request, 0, len(sorted)*len(assignments))
	for _, d := range sorted {
		for i, a := range assignments {
			w := windows[i]
			out = append(out, Request{
				Date:      time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.Local),
				ClassID:   a.ClassID,
				ClassName: a.ClassName,
				Program:   programFor(a),
				StartsAt:  time.Date(d.Year(), d.Month(), d.Day(), w.sh, w.sm, 0, 0, time.Local),
				EndsAt:    time.Date(d.Year(), d.Month(), d.Day(), w.eh, w.em, 0, 0, time.Local),
				Payload:   payload,
			})
		}
	}
	return out, nil
}
