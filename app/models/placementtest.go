package models

import (
	"time"

	"github.com/lib/pq"
)

// PlacementTest is a scheduled test event (placement, progress or final).
type PlacementTest struct {
	ID              string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Title           string         `json:"title" gorm:"not null" validate:"required"`
	ClassID         string         `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TeacherID       string         `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TestType        TestType       `json:"test_type" gorm:"not null;default:'placement'"`
	DurationMinutes int            `json:"duration_minutes" gorm:"not null;default:60"`
	Materials       pq.StringArray `json:"materials" gorm:"type:text[]"`
	StartsAt        time.Time      `json:"starts_at" gorm:"not null;index" validate:"required"`
	IsActive        bool           `json:"is_active" gorm:"default:true"`
	CreatedAt       time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt       *time.Time     `json:"deleted_at,omitempty" gorm:"index"`
	Class           *Class         `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Teacher         *User          `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}
