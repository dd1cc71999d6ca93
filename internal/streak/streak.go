// Package streak counts consecutive workout days.
//
// The walk is anchored at today: if today has no workout the streak is 0,
// even when yesterday had one.
package streak

import (
	"slices"
	"time"

	"github.com/garrettladley/swimlight/internal/daterange"
)

// Count walks backward one calendar day at a time from now's day and counts
// days present in dates. Multiple workouts on one day count once. A nil loc
// means time.Local.
func Count(dates []time.Time, now time.Time, loc *time.Location) int {
	if loc == nil {
		loc = time.Local
	}
	set := daySet(dates, loc)
	if len(set) == 0 {
		return 0
	}

	var (
		count  int
		cursor = daterange.StartOfDay(now.In(loc))
	)
	for {
		if _, ok := set[dayOf(cursor)]; !ok {
			return count
		}
		count++
		cursor = cursor.AddDate(0, 0, -1)
	}
}

// Longest returns the longest run of consecutive days anywhere in dates.
func Longest(dates []time.Time, loc *time.Location) int {
	days := Days(dates, loc)
	if len(days) == 0 {
		return 0
	}

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, -1)) {
			run++
			best = max(best, run)
			continue
		}
		run = 1
	}
	return best
}

// Days returns the distinct calendar days of dates, newest first.
func Days(dates []time.Time, loc *time.Location) []time.Time {
	set := daySet(dates, loc)
	days := make([]time.Time, 0, len(set))
	for _, d := range set {
		days = append(days, d)
	}
	slices.SortFunc(days, func(a, b time.Time) int { return b.Compare(a) })
	return days
}

type day struct {
	year  int
	month time.Month
	day   int
}

func dayOf(t time.Time) day {
	y, m, d := t.Date()
	return day{year: y, month: m, day: d}
}

func daySet(dates []time.Time, loc *time.Location) map[day]time.Time {
	if loc == nil {
		loc = time.Local
	}
	set := make(map[day]time.Time, len(dates))
	for _, t := range dates {
		if t.IsZero() {
			continue
		}
		start := daterange.StartOfDay(t.In(loc))
		set[dayOf(start)] = start
	}
	return set
}
