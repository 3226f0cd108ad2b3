package models

import "time"

// Class is one course group at the center. Program decides the type tag
// stamped on bulk-created schedules (bilingual or regular).
type Class struct {
	ID           string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()" validate:"required,uuid"`
	Name         string     `json:"name" gorm:"uniqueIndex;not null" validate:"required"`
	Code         string     `json:"code" gorm:"uniqueIndex;not null" validate:"required"`
	Program      Program    `json:"program" gorm:"not null;default:'regular'"`
	Level        string     `json:"level,omitempty" gorm:"type:varchar(10)"`
	TeacherID    *string    `json:"teacher_id,omitempty" gorm:"index;type:uuid" validate:"omitempty,uuid"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	StudentCount int        `json:"student_count" gorm:"-"`
	CreatedAt    time.Time  `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty" gorm:"index"`
	Teacher      *User      `json:"teacher,omitempty" gorm:"foreignKey:TeacherID;references:ID"`
	Students     []*Student `json:"students,omitempty" gorm:"foreignKey:ClassID;references:ID"`
}
