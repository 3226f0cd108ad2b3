package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 0, 0, 0, time.Local)
}

func TestAcademicYearBoundary(t *testing.T) {
	// June 30 and July 1 of the same year sit on opposite sides of the
	// academic year boundary.
	june30 := date(2024, time.June, 30)
	july1 := date(2024, time.July, 1)

	if got := AcademicYear(june30); got != "2023/2024" {
		t.Errorf("AcademicYear(June 30) = %s, want 2023/2024", got)
	}
	if got := AcademicYear(july1); got != "2024/2025" {
		t.Errorf("AcademicYear(July 1) = %s, want 2024/2025", got)
	}
	if got := Semester(june30); got != 2 {
		t.Errorf("Semester(June 30) = %d, want 2", got)
	}
	if got := Semester(july1); got != 1 {
		t.Errorf("Semester(July 1) = %d, want 1", got)
	}
}

func TestStartYear(t *testing.T) {
	if got := StartYear(date(2024, time.September, 15)); got != 2024 {
		t.Errorf("StartYear(Sep 2024) = %d, want 2024", got)
	}
	if got := StartYear(date(2025, time.February, 3)); got != 2024 {
		t.Errorf("StartYear(Feb 2025) = %d, want 2024", got)
	}
}

func TestWeekInSemester(t *testing.T) {
	cases := []struct {
		name string
		in   time.Time
		want int
	}{
		{"first day of semester 1", date(2024, time.July, 1), 1},
		{"eighth day of semester 1", date(2024, time.July, 8), 2},
		{"first day of semester 2", date(2025, time.January, 1), 1},
		{"eighth day of semester 2", date(2025, time.January, 8), 2},
		{"late semester 1", date(2024, time.December, 30), 27},
		// Semester 2 dates already carry calendar year startYear+1; the
		// week count must not be skewed by re-deriving the year from them.
		{"mid semester 2", date(2025, time.March, 10), 10},
	}
	for _, c := range cases {
		if got := WeekInSemester(c.in); got != c.want {
			t.Errorf("%s: WeekInSemester(%s) = %d, want %d", c.name, c.in.Format("2006-01-02"), got, c.want)
		}
	}
}

func TestWeekDateRange(t *testing.T) {
	start, end := WeekDateRange(2024, 1, 2)
	if start.Format("2006-01-02") != "2024-07-08" {
		t.Errorf("week 2 start = %s, want 2024-07-08", start.Format("2006-01-02"))
	}
	if end.Format("2006-01-02") != "2024-07-14" {
		t.Errorf("week 2 end = %s, want 2024-07-14", end.Format("2006-01-02"))
	}

	start, end = WeekDateRange(2024, 2, 1)
	if start.Format("2006-01-02") != "2025-01-01" {
		t.Errorf("semester 2 week 1 start = %s, want 2025-01-01", start.Format("2006-01-02"))
	}
	if end.Format("2006-01-02") != "2025-01-07" {
		t.Errorf("semester 2 week 1 end = %s, want 2025-01-07", end.Format("2006-01-02"))
	}
}

func TestWeekDateRangeRoundTrip(t *testing.T) {
	// For any instant, the computed week's date range must contain it.
	instants := []time.Time{
		date(2024, time.July, 1),
		date(2024, time.August, 17),
		date(2024, time.December, 31),
		date(2025, time.January, 1),
		date(2025, time.April, 22),
		date(2025, time.June, 30),
		date(2023, time.November, 5),
	}
	for _, in := range instants {
		start, end := WeekDateRange(StartYear(in), Semester(in), WeekInSemester(in))
		day := time.Date(in.Year(), in.Month(), in.Day(), 0, 0, 0, 0, time.Local)
		if day.Before(start) || day.After(end) {
			t.Errorf("round trip failed for %s: range [%s, %s]",
				in.Format("2006-01-02"), start.Format("2006-01-02"), end.Format("2006-01-02"))
		}
		if !end.Equal(start.AddDate(0, 0, 6)) {
			t.Errorf("range for %s is not a 7-day span: [%s, %s]",
				in.Format("2006-01-02"), start.Format("2006-01-02"), end.Format("2006-01-02"))
		}
	}
}

func TestParseAcademicYear(t *testing.T) {
	start, err := ParseAcademicYear("2024/2025")
	if err != nil {
		t.Fatalf("ParseAcademicYear(2024/2025) returned error: %v", err)
	}
	if start != 2024 {
		t.Errorf("ParseAcademicYear(2024/2025) = %d, want 2024", start)
	}

	for _, bad := range []string{"", "2024", "2024/2026", "abcd/efgh", "2024/2025/2026"} {
		if _, err := ParseAcademicYear(bad); err == nil {
			t.Errorf("ParseAcademicYear(%q) should have failed", bad)
		}
	}
}
