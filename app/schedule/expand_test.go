package schedule

import (
	"errors"
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestExpandCartesianProduct(t *testing.T) {
	dates := []time.Time{day(2025, time.January, 6), day(2025, time.January, 7)}
	assignments := []Assignment{
		{ClassID: "5A", ClassName: "5A", StartTime: "08:00", EndTime: "09:00"},
		{ClassID: "5B", ClassName: "5B", StartTime: "10:00", EndTime: "11:00"},
	}
	payload := Payload{Topic: "X", Skills: []string{"speaking"}}

	reqs, err := Expand(dates, assignments, payload)
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	if len(reqs) != 4 {
		t.Fatalf("got %d requests, want 4", len(reqs))
	}

	want := []struct {
		date  string
		class string
		start string
	}{
		{"2025-01-06", "5A", "08:00"},
		{"2025-01-06", "5B", "10:00"},
		{"2025-01-07", "5A", "08:00"},
		{"2025-01-07", "5B", "10:00"},
	}
	seen := make(map[string]bool)
	for i, r := range reqs {
		if got := r.Date.Format("2006-01-02"); got != want[i].date {
			t.Errorf("request[%d].Date = %s, want %s", i, got, want[i].date)
		}
		if r.ClassID != want[i].class {
			t.Errorf("request[%d].ClassID = %s, want %s", i, r.ClassID, want[i].class)
		}
		if got := r.StartsAt.Format("15:04"); got != want[i].start {
			t.Errorf("request[%d] starts %s, want %s", i, got, want[i].start)
		}
		if r.Payload.Topic != "X" || len(r.Payload.Skills) != 1 || r.Payload.Skills[0] != "speaking" {
			t.Errorf("request[%d] payload = %+v, want shared payload", i, r.Payload)
		}
		key := r.Date.Format("2006-01-02") + "|" + r.ClassID
		if seen[key] {
			t.Errorf("duplicate (date, class) pair %s", key)
		}
		seen[key] = true
	}
}

func TestExpandSortsDatesAscending(t *testing.T) {
	dates := []time.Time{day(2025, time.March, 3), day(2025, time.January, 6), day(2025, time.February, 10)}
	assignments := []Assignment{{ClassID: "A1", StartTime: "08:00", EndTime: "09:30"}}

	reqs, err := Expand(dates, assignments, Payload{})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	for i := 1; i < len(reqs); i++ {
		if reqs[i].Date.Before(reqs[i-1].Date) {
			t.Errorf("dates not ascending at position %d: %s after %s",
				i, reqs[i].Date.Format("2006-01-02"), reqs[i-1].Date.Format("2006-01-02"))
		}
	}
}

func TestExpandValidation(t *testing.T) {
	good := []Assignment{{ClassID: "A1", StartTime: "08:00", EndTime: "09:00"}}
	dates := []time.Time{day(2025, time.January, 6)}

	if _, err := Expand(nil, good, Payload{}); !errors.Is(err, ErrNoDates) {
		t.Errorf("empty dates: got %v, want ErrNoDates", err)
	}
	if _, err := Expand(dates, nil, Payload{}); !errors.Is(err, ErrNoAssignments) {
		t.Errorf("empty assignments: got %v, want ErrNoAssignments", err)
	}

	bad := [][]Assignment{
		{{ClassID: "A1", StartTime: "", EndTime: "09:00"}},
		{{ClassID: "A1", StartTime: "08:00", EndTime: ""}},
		{{ClassID: "A1", StartTime: "09:00", EndTime: "09:00"}},
		{{ClassID: "A1", StartTime: "10:00", EndTime: "09:00"}},
		{{ClassID: "A1", StartTime: "8 o'clock", EndTime: "09:00"}},
		// One bad row poisons the whole batch.
		{{ClassID: "A1", StartTime: "08:00", EndTime: "09:00"}, {ClassID: "B2", StartTime: "11:00", EndTime: "10:00"}},
	}
	for i, assignments := range bad {
		reqs, err := Expand(dates, assignments, Payload{})
		if err == nil {
			t.Errorf("case %d: Expand should have failed", i)
		}
		if reqs != nil {
			t.Errorf("case %d: got partial output of %d requests", i, len(reqs))
		}
	}
}

func TestExpandProgramTag(t *testing.T) {
	dates := []time.Time{day(2024, time.September, 2)}
	assignments := []Assignment{
		{ClassID: "c1", Program: ProgramBilingual, StartTime: "08:00", EndTime: "09:00"},
		{ClassID: "c2", ClassCode: "BIL-5A", StartTime: "08:00", EndTime: "09:00"},
		{ClassID: "c3", ClassCode: "REG-3B", StartTime: "08:00", EndTime: "09:00"},
		{ClassID: "c4", Program: ProgramRegular, ClassCode: "BIL-1C", StartTime: "08:00", EndTime: "09:00"},
	}

	reqs, err := Expand(dates, assignments, Payload{})
	if err != nil {
		t.Fatalf("Expand returned error: %v", err)
	}
	want := []string{ProgramBilingual, ProgramBilingual, ProgramRegular, ProgramRegular}
	for i, r := range reqs {
		if r.Program != want[i] {
			t.Errorf("request[%d].Program = %s, want %s", i, r.Program, want[i])
		}
	}
}
