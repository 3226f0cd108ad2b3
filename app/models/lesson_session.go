package models

import (
	"time"

	"github.com/lib/pq"
)

// LessonSession is one scheduled class meeting. Bulk creation stamps every
// session of the same batch with a shared BatchID.
type LessonSession struct {
	ID          string         `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	ClassID     string         `json:"class_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	TeacherID   string         `json:"teacher_id" gorm:"not null;index;type:uuid" validate:"required,uuid"`
	Topic       string         `json:"topic" gorm:"not null" validate:"required"`
	Description string         `json:"description,omitempty"`
	Skills      pq.StringArray `json:"skills" gorm:"type:text[]"`
	CEFRLevel   string         `json:"cefr_level,omitempty" gorm:"type:varchar(10)"`
	LessonPlan  string         `json:"lesson_plan,omitempty"`
	Materials   pq.StringArray `json:"materials" gorm:"type:text[]"`
	Program     Program        `json:"program" gorm:"not null;default:'regular'"`
	Status      SessionStatus  `json:"status" gorm:"not null;default:'scheduled'"`
	StartsAt    time.Time      `json:"starts_at" gorm:"not null;index" validate:"required"`
	EndsAt      time.Time      `json:"ends_at" gorm:"not null" validate:"required"`
	BatchID     *string        `json:"batch_id,omitempty" gorm:"index;type:uuid"`
	CreatedAt   time.Time      `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time      `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt   *time.Time     `json:"deleted_at,omitempty" gorm:"index"`
	Class       *Class         `json:"class,omitempty" gorm:"foreignKey:ClassID;references:ID"`
	Teacher     *User          `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
}
