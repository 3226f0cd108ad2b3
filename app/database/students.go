package database

import (
	"database/sql"

	"github.com/zakiachsan/ELC-sub000/app/models"
)

// GetStudents retrieves active students, optionally filtered by class or a
// name search.
func GetStudents(db *sql.DB, classID, search string) ([]*models.Student, error) {
	query := `
		SELECT s.id, s.first_name, s.last_name, s.phone, s.class_id, s.is_active,
		       s.created_at, s.updated_at, c.name
		FROM students s
		LEFT JOIN classes c ON s.class_id = c.id
		WHERE s.is_active = true AND s.deleted_at IS NULL
	`
	args := []interface{}{}

	if classID != "" {
		args = append(args, classID)
		query += ` AND s.class_id = $1`
	}
	if search != "" {
		args = append(args, "%"+search+"%")
		if classID != "" {
			query += ` AND (s.first_name ILIKE $2 OR s.last_name ILIKE $2)`
		} else {
			query += ` AND (s.first_name ILIKE $1 OR s.last_name ILIKE $1)`
		}
	}
	query += ` ORDER BY s.first_name, s.last_name`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student := &models.Student{}
		var phone, studentClassID, className sql.NullString
		if err := rows.Scan(
			&student.ID, &student.FirstName, &student.LastName, &phone, &studentClassID,
			&student.IsActive, &student.CreatedAt, &student.UpdatedAt, &className,
		); err != nil {
			return nil, err
		}
		student.Phone = phone.String
		if studentClassID.Valid {
			student.ClassID = &studentClassID.String
			student.Class = &models.Class{ID: studentClassID.String, Name: className.String}
		}
		students = append(students, student)
	}
	return students, nil
}

// CreateStudent inserts a new student.
func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (first_name, last_name, phone, class_id, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`

	var classID interface{}
	if student.ClassID != nil && *student.ClassID != "" {
		classID = *student.ClassID
	}

	return db.QueryRow(query, student.FirstName, student.LastName, student.Phone, classID).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}
