package database

import (
	"database/sql"

	"github.com/lib/pq"

	"github.com/zakiachsan/ELC-sub000/app/calendar"
	"github.com/zakiachsan/ELC-sub000/app/models"
)

// CreatePlacementTest inserts one test event.
func CreatePlacementTest(db *sql.DB, test *models.PlacementTest) error {
	query := `
		INSERT INTO placement_tests
			(title, class_id, teacher_id, test_type, duration_minutes, materials, starts_at,
			 is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, true, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	return db.QueryRow(
		query,
		test.Title, test.ClassID, test.TeacherID, test.TestType,
		test.DurationMinutes, pq.Array([]string(test.Materials)), test.StartsAt,
	).Scan(&test.ID, &test.CreatedAt, &test.UpdatedAt)
}

// GetPlacementTestsForYear retrieves a teacher's test events falling in the
// academic year beginning July 1 of startYear, ordered by start time.
func GetPlacementTestsForYear(db *sql.DB, teacherID string, startYear int) ([]*models.PlacementTest, error) {
	yearStart := calendar.SemesterStart(startYear, 1)
	yearEnd := calendar.SemesterStart(startYear+1, 1)

	query := `
		SELECT t.id, t.title, t.class_id, t.teacher_id, t.test_type, t.duration_minutes,
		       t.materials, t.starts_at, t.is_active, t.created_at, t.updated_at, c.name
		FROM placement_tests t
		JOIN classes c ON t.class_id = c.id
		WHERE t.teacher_id = $1 AND t.starts_at >= $2 AND t.starts_at < $3
		  AND t.is_active = true AND t.deleted_at IS NULL
		ORDER BY t.starts_at ASC
	`
	rows, err := db.Query(query, teacherID, yearStart, yearEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tests []*models.PlacementTest
	for rows.Next() {
		test := &models.PlacementTest{Class: &models.Class{}}
		if err := rows.Scan(
			&test.ID, &test.Title, &test.ClassID, &test.TeacherID, &test.TestType,
			&test.DurationMinutes, &test.Materials, &test.StartsAt,
			&test.IsActive, &test.CreatedAt, &test.UpdatedAt, &test.Class.Name,
		); err != nil {
			return nil, err
		}
		test.Class.ID = test.ClassID
		tests = append(tests, test)
	}
	return tests, nil
}

// DeletePlacementTest soft deletes a test event.
func DeletePlacementTest(db *sql.DB, testID string) error {
	query := `UPDATE placement_tests SET is_active = false, updated_at = NOW() WHERE id = $1`
	_, err := db.Exec(query, testID)
	return err
}
