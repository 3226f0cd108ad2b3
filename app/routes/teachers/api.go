package teachers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zakiachsan/ELC-sub000/app/config"
	"github.com/zakiachsan/ELC-sub000/app/database"
)

func GetTeachersAPI(c *fiber.Ctx) error {
	teachers, err := database.GetAllTeachers(config.GetDB())
	if err != nil {
		return c.JSON(fiber.Map{
			"teachers": []interface{}{},
			"count":    0,
		})
	}

	return c.JSON(fiber.Map{
		"teachers": teachers,
		"count":    len(teachers),
	})
}

func GetTeachersForSelectionAPI(c *fiber.Ctx) error {
	search := c.Query("search", "")

	// Simple query for teacher selection - only essential fields
	db := config.GetDB()
	query := `SELECT DISTINCT u.id, u.first_name, u.last_name, u.email FROM users u
			  JOIN user_roles ur ON u.id = ur.user_id
			  JOIN roles r ON ur.role_id = r.id
			  WHERE r.name = 'teacher' AND u.deleted_at IS NULL AND u.is_active = true`
	args := []interface{}{}

	if search != "" {
		query += ` AND (u.first_name ILIKE $1 OR u.last_name ILIKE $1 OR u.email ILIKE $1)`
		args = append(args, "%"+search+"%")
	}

	query += ` ORDER BY u.first_name LIMIT 20`

	rows, err := db.Query(query, args...)
	if err != nil {
		return c.JSON(fiber.Map{"teachers": []interface{}{}, "count": 0})
	}
	defer rows.Close()

	var teachers []fiber.Map
	for rows.Next() {
		var id, firstName, lastName, email string
		if err := rows.Scan(&id, &firstName, &lastName, &email); err != nil {
			continue
		}
		teachers = append(teachers, fiber.Map{
			"id":         id,
			"first_name": firstName,
			"last_name":  lastName,
			"email":      email,
		})
	}

	return c.JSON(fiber.Map{"teachers": teachers, "count": len(teachers)})
}
