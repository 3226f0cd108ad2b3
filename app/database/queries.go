package database

import (
	"database/sql"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/zakiachsan/ELC-sub000/app/models"
)

// hashPassword hashes a password using bcrypt
func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}

func GetUserByEmail(db *sql.DB, email string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE email = $1 AND is_active = true`

	err := db.QueryRow(query, email).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserByID(db *sql.DB, userID string) (*models.User, error) {
	user := &models.User{}
	query := `SELECT id, email, password, first_name, last_name, is_active, created_at, updated_at
			  FROM users WHERE id = $1 AND is_active = true`

	err := db.QueryRow(query, userID).Scan(
		&user.ID, &user.Email, &user.Password, &user.FirstName,
		&user.LastName, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
	)

	if err != nil {
		return nil, err
	}
	return user, nil
}

func GetUserRoles(db *sql.DB, userID string) ([]*models.Role, error) {
	query := `
		SELECT r.id, r.name
		FROM roles r
		JOIN user_roles ur ON r.id = ur.role_id
		WHERE ur.user_id = $1
	`
	rows, err := db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []*models.Role
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name); err != nil {
			return nil, err
		}
		roles = append(roles, &role)
	}
	return roles, nil
}

func CreateSession(db *sql.DB, sessionID interface{}, userID string, expiresAt time.Time) error {
	query := `INSERT INTO sessions (id, user_id, expires_at, created_at) VALUES ($1, $2, $3, $4)`
	_, err := db.Exec(query, sessionID, userID, expiresAt, time.Now())
	return err
}

func DeleteSession(db *sql.DB, sessionID string) error {
	query := `DELETE FROM sessions WHERE id = $1`
	_, err := db.Exec(query, sessionID)
	return err
}

func UpdateUserPassword(db *sql.DB, userID string, hashedPassword string) error {
	query := `UPDATE users SET password = $1, updated_at = NOW() WHERE id = $2`
	_, err := db.Exec(query, hashedPassword, userID)
	return err
}

// CreateTeacher inserts a new teacher account and grants the teacher role.
func CreateTeacher(db *sql.DB, user *models.User) error {
	hashed, err := hashPassword(user.Password)
	if err != nil {
		return err
	}

	query := `INSERT INTO users (email, password, first_name, last_name, phone, is_active, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, true, NOW(), NOW())
			  RETURNING id, created_at, updated_at`
	err = db.QueryRow(query, user.Email, hashed, user.FirstName, user.LastName, user.Phone).
		Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return err
	}

	grant := `INSERT INTO user_roles (user_id, role_id, created_at)
			  SELECT $1, id, NOW() FROM roles WHERE name = 'teacher'
			  ON CONFLICT DO NOTHING`
	_, err = db.Exec(grant, user.ID)
	return err
}

// GetAllTeachers returns active users holding the teacher role, with their classes.
func GetAllTeachers(db *sql.DB) ([]*models.User, error) {
	query := `
		SELECT DISTINCT u.id, u.email, u.first_name, u.last_name, u.phone, u.is_active, u.created_at, u.updated_at
		FROM users u
		JOIN user_roles ur ON u.id = ur.user_id
		JOIN roles r ON ur.role_id = r.id
		WHERE r.name = 'teacher' AND u.is_active = true AND u.deleted_at IS NULL
		ORDER BY u.first_name, u.last_name
	`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teachers []*models.User
	for rows.Next() {
		user := &models.User{}
		var phone sql.NullString
		if err := rows.Scan(
			&user.ID, &user.Email, &user.FirstName, &user.LastName,
			&phone, &user.IsActive, &user.CreatedAt, &user.UpdatedAt,
		); err != nil {
			return nil, err
		}
		user.Phone = phone.String
		teachers = append(teachers, user)
	}

	for _, teacher := range teachers {
		classes, err := GetClassesByTeacher(db, teacher.ID)
		if err != nil {
			continue
		}
		teacher.Classes = classes
	}

	return teachers, nil
}
