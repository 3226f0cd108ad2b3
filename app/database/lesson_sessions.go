package database

import (
	"database/sql"
	"time"

	"github.com/lib/pq"

	"github.com/zakiachsan/ELC-sub000/app/calendar"
	"github.com/zakiachsan/ELC-sub000/app/models"
)

// CreateLessonSession inserts one lesson session record.
func CreateLessonSession(db *sql.DB, session *models.LessonSession) error {
	query := `
		INSERT INTO lesson_sessions
			(class_id, teacher_id, topic, description, skills, cefr_level, lesson_plan,
			 materials, program, status, starts_at, ends_at, batch_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, 'scheduled', $10, $11, $12, NOW(), NOW())
		RETURNING id, status, created_at, updated_at
	`
	var batchID interface{}
	if session.BatchID != nil && *session.BatchID != "" {
		batchID = *session.BatchID
	}

	return db.QueryRow(
		query,
		session.ClassID, session.TeacherID, session.Topic, session.Description,
		pq.Array([]string(session.Skills)), session.CEFRLevel, session.LessonPlan,
		pq.Array([]string(session.Materials)), session.Program,
		session.StartsAt, session.EndsAt, batchID,
	).Scan(&session.ID, &session.Status, &session.CreatedAt, &session.UpdatedAt)
}

// GetLessonSessionByID retrieves a single lesson session with its class name.
func GetLessonSessionByID(db *sql.DB, sessionID string) (*models.LessonSession, error) {
	query := `
		SELECT s.id, s.class_id, s.teacher_id, s.topic, s.description, s.skills, s.cefr_level,
		       s.lesson_plan, s.materials, s.program, s.status, s.starts_at, s.ends_at, s.batch_id,
		       s.created_at, s.updated_at, c.name
		FROM lesson_sessions s
		JOIN classes c ON s.class_id = c.id
		WHERE s.id = $1 AND s.deleted_at IS NULL
	`

	session := &models.LessonSession{Class: &models.Class{}}
	var description, cefrLevel, lessonPlan, batchID sql.NullString
	err := db.QueryRow(query, sessionID).Scan(
		&session.ID, &session.ClassID, &session.TeacherID, &session.Topic, &description,
		&session.Skills, &cefrLevel, &lessonPlan, &session.Materials,
		&session.Program, &session.Status, &session.StartsAt, &session.EndsAt, &batchID,
		&session.CreatedAt, &session.UpdatedAt, &session.Class.Name,
	)
	if err != nil {
		return nil, err
	}

	session.Description = description.String
	session.CEFRLevel = cefrLevel.String
	session.LessonPlan = lessonPlan.String
	if batchID.Valid {
		session.BatchID = &batchID.String
	}
	session.Class.ID = session.ClassID
	return session, nil
}

// GetLessonSessionsForYear retrieves a teacher's lesson sessions falling in
// the academic year beginning July 1 of startYear, ordered by start time.
func GetLessonSessionsForYear(db *sql.DB, teacherID string, startYear int) ([]*models.LessonSession, error) {
	yearStart := calendar.SemesterStart(startYear, 1)
	yearEnd := calendar.SemesterStart(startYear+1, 1)

	query := `
		SELECT s.id, s.class_id, s.teacher_id, s.topic, s.description, s.skills, s.cefr_level,
		       s.lesson_plan, s.materials, s.program, s.status, s.starts_at, s.ends_at, s.batch_id,
		       s.created_at, s.updated_at, c.name
		FROM lesson_sessions s
		JOIN classes c ON s.class_id = c.id
		WHERE s.teacher_id = $1 AND s.starts_at >= $2 AND s.starts_at < $3 AND s.deleted_at IS NULL
		ORDER BY s.starts_at ASC
	`
	rows, err := db.Query(query, teacherID, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.LessonSession
	for rows.Next() {
		session := &models.LessonSession{Class: &models.Class{}}
		var description, cefrLevel, lessonPlan, batchID sql.NullString
		if err := rows.Scan(
			&session.ID, &session.ClassID, &session.TeacherID, &session.Topic, &description,
			&session.Skills, &cefrLevel, &lessonPlan, &session.Materials,
			&session.Program, &session.Status, &session.StartsAt, &session.EndsAt, &batchID,
			&session.CreatedAt, &session.UpdatedAt, &session.Class.Name,
		); err != nil {
			return nil, err
		}
		session.Description = description.String
		session.CEFRLevel = cefrLevel.String
		session.LessonPlan = lessonPlan.String
		if batchID.Valid {
			session.BatchID = &batchID.String
		}
		session.Class.ID = session.ClassID
		sessions = append(sessions, session)
	}
	return sessions, nil
}

// DeleteLessonSession soft deletes a lesson session.
func DeleteLessonSession(db *sql.DB, sessionID string) error {
	query := `UPDATE lesson_sessions SET deleted_at = NOW(), updated_at = NOW()
			  WHERE id = $1 AND deleted_at IS NULL`
	_, err := db.Exec(query, sessionID)
	return err
}

// MarkPastSessionsCompleted moves scheduled sessions that already ended into
// the completed state. Returns the number of sessions updated.
func MarkPastSessionsCompleted(db *sql.DB, now time.Time) (int64, error) {
	query := `UPDATE lesson_sessions SET status = 'completed', updated_at = NOW()
			  WHERE status = 'scheduled' AND ends_at < $1 AND deleted_at IS NULL`
	result, err := db.Exec(query, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// CountSessionsBetween counts non-deleted sessions for the dashboard cards.
func CountSessionsBetween(db *sql.DB, from, to time.Time) (int, error) {
	query := `SELECT COUNT(*) FROM lesson_sessions
			  WHERE starts_at >= $1 AND starts_at < $2 AND deleted_at IS NULL`
	var count int
	err := db.QueryRow(query, from, to).Scan(&count)
	return count, err
}
