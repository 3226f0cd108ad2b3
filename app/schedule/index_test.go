package schedule

import (
	"testing"
	"time"
)

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.Local)
}

// agendaItems covers both semesters of 2024/2025 with a mix of kinds.
func agendaItems() []Item {
	return []Item{
		{ID: "l1", Kind: KindLesson, Title: "Past Tense Review", StartsAt: at(2024, time.July, 1, 9), Materials: []string{"worksheet.pdf"}},
		{ID: "l2", Kind: KindLesson, Title: "Listening Drill", StartsAt: at(2024, time.July, 8, 10)},
		{ID: "t1", Kind: KindTest, Title: "Placement Test", StartsAt: at(2024, time.July, 8, 13), Materials: []string{"answer-key.pdf"}},
		{ID: "l3", Kind: KindLesson, Title: "Speaking Practice", StartsAt: at(2025, time.January, 6, 8)},
		{ID: "t2", Kind: KindTest, Title: "Progress Test", StartsAt: at(2025, time.January, 6, 11)},
	}
}

func TestCountBySemester(t *testing.T) {
	counts := CountBySemester(agendaItems())
	if counts[1] != 3 {
		t.Errorf("semester 1 count = %d, want 3", counts[1])
	}
	if counts[2] != 2 {
		t.Errorf("semester 2 count = %d, want 2", counts[2])
	}
}

func TestFilterByCategory(t *testing.T) {
	items := agendaItems()

	materials := FilterByCategory(items, CategoryMaterials)
	if len(materials) != 1 || materials[0].ID != "l1" {
		t.Errorf("materials = %v, want only l1", ids(materials))
	}
	// t1 carries materials but tests never land in the materials category.
	for _, it := range materials {
		if it.Kind == KindTest {
			t.Errorf("materials category must not contain tests, got %s", it.ID)
		}
	}

	lessons := FilterByCategory(items, CategoryLessonPlan)
	if got := ids(lessons); len(got) != 3 || got[0] != "l1" || got[1] != "l2" || got[2] != "l3" {
		t.Errorf("lesson-plan = %v, want [l1 l2 l3] in input order", got)
	}

	tasks := FilterByCategory(items, CategoryTask)
	if got := ids(tasks); len(got) != 2 || got[0] != "t1" || got[1] != "t2" {
		t.Errorf("task = %v, want [t1 t2]", got)
	}
}

func TestCountByCategory(t *testing.T) {
	counts := CountByCategory(agendaItems())
	want := map[Category]int{CategoryMaterials: 1, CategoryLessonPlan: 3, CategoryTask: 2}
	for cat, n := range want {
		if counts[cat] != n {
			t.Errorf("count[%s] = %d, want %d", cat, counts[cat], n)
		}
	}
}

func TestGroupByWeekSortedRegardlessOfInputOrder(t *testing.T) {
	// Semester 1 items spread over weeks 1, 2 and 7, supplied out of order.
	items := []Item{
		{ID: "a", Kind: KindLesson, StartsAt: at(2024, time.August, 12, 9)}, // week 7
		{ID: "b", Kind: KindLesson, StartsAt: at(2024, time.July, 1, 9)},    // week 1
		{ID: "c", Kind: KindTest, StartsAt: at(2024, time.July, 10, 9)},     // week 2
		{ID: "d", Kind: KindLesson, StartsAt: at(2024, time.July, 2, 14)},   // week 1
	}

	groups := GroupByWeek(items)
	if len(groups) != 3 {
		t.Fatalf("got %d groups, want 3", len(groups))
	}
	wantWeeks := []int{1, 2, 7}
	wantCounts := []int{2, 1, 1}
	for i, g := range groups {
		if g.Week != wantWeeks[i] {
			t.Errorf("group[%d].Week = %d, want %d", i, g.Week, wantWeeks[i])
		}
		if g.Count != wantCounts[i] {
			t.Errorf("group[%d].Count = %d, want %d", i, g.Count, wantCounts[i])
		}
	}

	if got := groups[1].Start.Format("2006-01-02"); got != "2024-07-08" {
		t.Errorf("week 2 range starts %s, want 2024-07-08", got)
	}
	if got := groups[1].End.Format("2006-01-02"); got != "2024-07-14" {
		t.Errorf("week 2 range ends %s, want 2024-07-14", got)
	}
}

func TestItemsInWeekChronological(t *testing.T) {
	items := []Item{
		{ID: "late", Kind: KindLesson, StartsAt: at(2024, time.July, 10, 15)},
		{ID: "other-week", Kind: KindLesson, StartsAt: at(2024, time.July, 1, 9)},
		{ID: "early", Kind: KindTest, StartsAt: at(2024, time.July, 9, 8)},
		{ID: "mid", Kind: KindLesson, StartsAt: at(2024, time.July, 9, 11)},
	}

	got := ids(ItemsInWeek(items, 2))
	want := []string{"early", "mid", "late"}
	if len(got) != len(want) {
		t.Fatalf("ItemsInWeek(2) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ItemsInWeek(2)[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if n := len(ItemsInWeek(items, 5)); n != 0 {
		t.Errorf("ItemsInWeek(5) returned %d items, want 0", n)
	}
}

func ids(items []Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}
