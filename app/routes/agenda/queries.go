package agenda

import (
	"database/sql"

	"github.com/zakiachsan/ELC-sub000/app/database"
	"github.com/zakiachsan/ELC-sub000/app/schedule"
)

// GetAgendaItems loads a teacher's lesson sessions and test events for one
// academic year and flattens them into agenda items for grouping.
func GetAgendaItems(db *sql.DB, teacherID string, startYear int) ([]schedule.Item, error) {
	sessions, err := database.GetLessonSessionsForYear(db, teacherID, startYear)
	if err != nil {
		return nil, err
	}
	tests, err := database.GetPlacementTestsForYear(db, teacherID, startYear)
	if err != nil {
		return nil, err
	}

	items := make([]schedule.Item, 0, len(sessions)+len(tests))
	for _, s := range sessions {
		items = append(items, schedule.Item{
			ID:              s.ID,
			Kind:            schedule.KindLesson,
			Title:           s.Topic,
			StartsAt:        s.StartsAt,
			ClassID:         s.ClassID,
			ClassName:       s.Class.Name,
			TeacherID:       s.TeacherID,
			Materials:       s.Materials,
			DurationMinutes: int(s.EndsAt.Sub(s.StartsAt).Minutes()),
		})
	}
	for _, t := range tests {
		items = append(items, schedule.Item{
			ID:              t.ID,
			Kind:            schedule.KindTest,
			Title:           t.Title,
			StartsAt:        t.StartsAt,
			ClassID:         t.ClassID,
			ClassName:       t.Class.Name,
			TeacherID:       t.TeacherID,
			Materials:       t.Materials,
			DurationMinutes: t.DurationMinutes,
		})
	}
	return items, nil
}
