package schedule

import "time"

// Kind discriminates the schedulable record types that land on the agenda.
type Kind string

const (
	KindLesson Kind = "lesson"
	KindTest   Kind = "test"
)

// Category is a filter predicate over agenda items, not a stored attribute.
type Category string

const (
	CategoryMaterials  Category = "materials"
	CategoryLessonPlan Category = "lesson-plan"
	CategoryTask       Category = "task"
)

// Categories lists the drill-down categories in display order.
var Categories = []Category{CategoryMaterials, CategoryLessonPlan, CategoryTask}

// Item is the common shape of anything placed on the agenda hierarchy.
// Kind-specific fields stay on the source records; grouping only needs these.
type Item struct {
	ID              string    `json:"id"`
	Kind            Kind      `json:"kind"`
	Title           string    `json:"title"`
	StartsAt        time.Time `json:"starts_at"`
	ClassID         string    `json:"class_id"`
	ClassName       string    `json:"class_name"`
	TeacherID       string    `json:"teacher_id"`
	Materials       []string  `json:"materials,omitempty"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
}

// Coordinate is the caller-owned drill-down position: year, then semester,
// then category, then week. Zero values mean the level is not selected yet.
// A fresh coordinate is built per navigation session; changing the root
// scope (teacher or class) resets it.
type Coordinate struct {
	Year     string   `json:"year"`
	Semester int      `json:"semester"`
	Category Category `json:"category"`
	Week     int      `json:"week"`
}
