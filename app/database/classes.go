package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/zakiachsan/ELC-sub000/app/models"
)

// GetActiveClasses retrieves all active classes ordered by name.
func GetActiveClasses(db *sql.DB) ([]*models.Class, error) {
	query := `SELECT id, name, code, program, level, teacher_id, is_active, created_at, updated_at
			  FROM classes WHERE is_active = true ORDER BY name ASC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{}
		var level, teacherID sql.NullString
		if err := rows.Scan(
			&class.ID, &class.Name, &class.Code, &class.Program, &level,
			&teacherID, &class.IsActive, &class.CreatedAt, &class.UpdatedAt,
		); err != nil {
			return nil, err
		}
		class.Level = level.String
		if teacherID.Valid {
			class.TeacherID = &teacherID.String
		}
		classes = append(classes, class)
	}
	return classes, nil
}

// GetClassesByTeacher retrieves the active classes assigned to a teacher.
func GetClassesByTeacher(db *sql.DB, teacherID string) ([]*models.Class, error) {
	query := `SELECT id, name, code, program, level, is_active, created_at, updated_at
			  FROM classes WHERE teacher_id = $1 AND is_active = true ORDER BY name ASC`
	rows, err := db.Query(query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []*models.Class
	for rows.Next() {
		class := &models.Class{TeacherID: &teacherID}
		var level sql.NullString
		if err := rows.Scan(
			&class.ID, &class.Name, &class.Code, &class.Program, &level,
			&class.IsActive, &class.CreatedAt, &class.UpdatedAt,
		); err != nil {
			return nil, err
		}
		class.Level = level.String
		classes = append(classes, class)
	}
	return classes, nil
}

// GetClassByID retrieves a single class by ID with teacher information.
func GetClassByID(db *sql.DB, classID string) (*models.Class, error) {
	query := `
		SELECT c.id, c.name, c.code, c.program, c.level, c.teacher_id, c.is_active, c.created_at, c.updated_at,
		       u.id, u.first_name, u.last_name, u.email
		FROM classes c
		LEFT JOIN users u ON c.teacher_id = u.id
		WHERE c.id = $1 AND c.is_active = true
	`

	class := &models.Class{}
	var level, teacherID sql.NullString
	var teacherUserID, teacherFirstName, teacherLastName, teacherEmail sql.NullString

	err := db.QueryRow(query, classID).Scan(
		&class.ID, &class.Name, &class.Code, &class.Program, &level, &teacherID,
		&class.IsActive, &class.CreatedAt, &class.UpdatedAt,
		&teacherUserID, &teacherFirstName, &teacherLastName, &teacherEmail,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("class not found")
		}
		return nil, err
	}

	class.Level = level.String
	if teacherID.Valid && teacherUserID.Valid {
		class.TeacherID = &teacherID.String
		class.Teacher = &models.User{
			ID:        teacherUserID.String,
			FirstName: teacherFirstName.String,
			LastName:  teacherLastName.String,
			Email:     teacherEmail.String,
		}
	}

	return class, nil
}

// GetClassesByIDs returns the requested classes keyed by ID. Used by bulk
// schedule creation to resolve program and name per assignment.
func GetClassesByIDs(db *sql.DB, classIDs []string) (map[string]*models.Class, error) {
	classes := make(map[string]*models.Class, len(classIDs))
	if len(classIDs) == 0 {
		return classes, nil
	}

	query := `SELECT id, name, code, program, level FROM classes
			  WHERE id = ANY($1) AND is_active = true`
	rows, err := db.Query(query, pq.Array(classIDs))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		class := &models.Class{}
		var level sql.NullString
		if err := rows.Scan(&class.ID, &class.Name, &class.Code, &class.Program, &level); err != nil {
			return nil, err
		}
		class.Level = level.String
		classes[class.ID] = class
	}
	return classes, nil
}

// CreateClass inserts a new class.
func CreateClass(db *sql.DB, class *models.Class) error {
	query := `INSERT INTO classes (name, code, program, level, teacher_id, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	var teacherID interface{}
	if class.TeacherID != nil && *class.TeacherID != "" {
		teacherID = *class.TeacherID
	}

	return db.QueryRow(query, class.Name, class.Code, class.Program, class.Level, teacherID).
		Scan(&class.ID, &class.CreatedAt, &class.UpdatedAt)
}

// UpdateClass updates an existing class in the database.
func UpdateClass(db *sql.DB, class *models.Class) error {
	query := `
		UPDATE classes
		SET name = $1, program = $2, level = $3, teacher_id = $4, updated_at = NOW()
		WHERE id = $5 AND is_active = true
	`

	var teacherID interface{}
	if class.TeacherID != nil && *class.TeacherID != "" {
		teacherID = *class.TeacherID
	}

	_, err := db.Exec(query, class.Name, class.Program, class.Level, teacherID, class.ID)
	if err != nil {
		return fmt.Errorf("failed to update class: %v", err)
	}

	class.UpdatedAt = time.Now()
	return nil
}

// DeleteClass soft deletes a class (sets is_active = false).
func DeleteClass(db *sql.DB, classID string) error {
	query := `
		UPDATE classes
		SET is_active = false, updated_at = NOW()
		WHERE id = $1
	`

	result, err := db.Exec(query, classID)
	if err != nil {
		return fmt.Errorf("failed to delete class: %v", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %v", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("class not found or already deleted")
	}

	return nil
}

// GetClassStudentCount returns the number of students in a class.
func GetClassStudentCount(db *sql.DB, classID string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM students
		WHERE class_id = $1 AND is_active = true
	`

	var count int
	err := db.QueryRow(query, classID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get student count: %v", err)
	}

	return count, nil
}
