package schedule

import (
	"sort"
	"time"

	"github.com/zakiachsan/ELC-sub000/app/calendar"
)

// CountBySemester partitions items into their semester buckets. The caller
// is expected to have filtered items to a single academic year already.
func CountBySemester(items []Item) map[int]int {
	counts := map[int]int{1: 0, 2: 0}
	for _, it := range items {
		counts[calendar.Semester(it.StartsAt)]++
	}
	return counts
}

// FilterBySemester keeps the items falling in the given semester, preserving
// input order.
func FilterBySemester(items []Item, semester int) []Item {
	var out []Item
	for _, it := range items {
		if calendar.Semester(it.StartsAt) == semester {
			out = append(out, it)
		}
	}
	return out
}

// FilterByCategory applies the category predicate, preserving input order.
// Materials only ever matches lesson sessions; tests keep their attachments
// under the task drill-down instead.
func FilterByCategory(items []Item, cat Category) []Item {
	var out []Item
	for _, it := range items {
		switch cat {
		case CategoryMaterials:
			if it.Kind == KindLesson && len(it.Materials) > 0 {
				out = append(out, it)
			}
		case CategoryLessonPlan:
			if it.Kind == KindLesson {
				out = append(out, it)
			}
		case CategoryTask:
			if it.Kind == KindTest {
				out = append(out, it)
			}
		}
	}
	return out
}

// CountByCategory returns the size of each category's slice of items.
func CountByCategory(items []Item) map[Category]int {
	counts := make(map[Category]int, len(Categories))
	for _, cat := range Categories {
		counts[cat] = len(FilterByCategory(items, cat))
	}
	return counts
}

// WeekGroup is one row of the week drill-down list.
type WeekGroup struct {
	Week  int       `json:"week"`
	Count int       `json:"count"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// GroupByWeek buckets items into week-in-semester groups, sorted ascending
// by week number. Items may arrive in any order; the sort is what keeps the
// drill-down stable across re-renders.
func GroupByWeek(items []Item) []WeekGroup {
	type bucket struct {
		count int
		rep   time.Time
	}
	buckets := make(map[int]*bucket)
	for _, it := range items {
		w := calendar.WeekInSemester(it.StartsAt)
		b := buckets[w]
		if b == nil {
			b = &bucket{rep: it.StartsAt}
			buckets[w] = b
		}
		b.count++
	}

	weeks := make([]int, 0, len(buckets))
	for w := range buckets {
		weeks = append(weeks, w)
	}
	sort.Ints(weeks)

	groups := make([]WeekGroup, 0, len(weeks))
	for _, w := range weeks {
		b := buckets[w]
		start, end := calendar.WeekDateRange(calendar.StartYear(b.rep), calendar.Semester(b.rep), w)
		groups = append(groups, WeekGroup{Week: w, Count: b.count, Start: start, End: end})
	}
	return groups
}

// ItemsInWeek returns the items falling into the given week bucket, sorted
// ascending by start time so a week always renders chronologically no matter
// how the input was ordered.
func ItemsInWeek(items []Item, week int) []Item {
	var out []Item
	for _, it := range items {
		if calendar.WeekInSemester(it.StartsAt) == week {
			out = append(out, it)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartsAt.Before(out[j].StartsAt) })
	return out
}
