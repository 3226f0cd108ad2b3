package calendar

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// The ELC academic year runs July through June. Semester 1 covers July to
// December of the start year, semester 2 covers January to June of the
// following calendar year. Weeks are 1-based 7-day buckets counted from the
// first day of the semester.

// StartYear returns the first calendar year of the academic year containing t.
func StartYear(t time.Time) int {
	if t.Month() >= time.July {
		return t.Year()
	}
	return t.Year() - 1
}

// AcademicYear returns the "2024/2025" style label for the academic year containing t.
func AcademicYear(t time.Time) string {
	start := StartYear(t)
	return fmt.Sprintf("%d/%d", start, start+1)
}

// Semester returns 1 for July-December dates and 2 for January-June dates.
func Semester(t time.Time) int {
	if t.Month() >= time.July {
		return 1
	}
	return 2
}

// SemesterStart returns the first civil day of the given semester. Semester 2
// starts in the calendar year after the academic year's start year.
func SemesterStart(startYear, semester int) time.Time {
	if semester == 1 {
		return time.Date(startYear, time.July, 1, 0, 0, 0, 0, time.Local)
	}
	return time.Date(startYear+1, time.January, 1, 0, 0, 0, 0, time.Local)
}

// civilDay returns a day ordinal that only depends on the calendar date, so
// day arithmetic is immune to location and DST offsets.
func civilDay(t time.Time) int {
	return int(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400)
}

// WeekInSemester returns the 1-based week bucket of t within its semester.
// The semester start must be derived from t's academic year rather than t's
// own calendar year: for semester 2 the two differ, and using the wrong one
// skews every January-June date by a full year of weeks.
func WeekInSemester(t time.Time) int {
	start := SemesterStart(StartYear(t), Semester(t))
	return (civilDay(t)-civilDay(start))/7 + 1
}

// WeekDateRange returns the first and last day of the given week. The range
// always spans 7 days even when the semester ends mid-week.
func WeekDateRange(startYear, semester, week int) (time.Time, time.Time) {
	start := SemesterStart(startYear, semester).AddDate(0, 0, (week-1)*7)
	return start, start.AddDate(0, 0, 6)
}

// ParseAcademicYear parses a "2024/2025" label into its start year.
func ParseAcademicYear(label string) (int, error) {
	parts := strings.Split(label, "/")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid academic year %q", label)
	}
	start, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid academic year %q", label)
	}
	end, err := strconv.Atoi(parts[1])
	if err != nil || end != start+1 {
		return 0, fmt.Errorf("invalid academic year %q", label)
	}
	return start, nil
}
