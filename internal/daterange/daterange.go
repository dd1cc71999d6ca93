package daterange

import (
	"fmt"
	"iter"
	"time"
)

type Mode uint

const (
	Day Mode = iota
	Month
)

func (m Mode) String() string {
	switch m {
	case Day:
		return "day"
	case Month:
		return "month"
	default:
		return fmt.Sprintf("mode(%d)", uint(m))
	}
}

const keyLayout = "2006-01-02"

// Range is the half-open interval [Start, End).
type Range struct {
	Start time.Time
	End   time.Time
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Error reports a calendar computation that could not produce a range.
// Callers treat it as "no data".
type Error struct {
	Mode   Mode
	Time   time.Time
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("date range (%s) for %s: %s", e.Mode, e.Time.Format(time.RFC3339), e.Reason)
}

// Bucketer computes day and month boundaries on the Gregorian calendar of a
// fixed location.
type Bucketer struct {
	loc *time.Location
}

func New(loc *time.Location) Bucketer {
	return Bucketer{loc: loc}
}

func (b Bucketer) Location() *time.Location {
	if b.loc == nil {
		return time.Local
	}
	return b.loc
}

func (b Bucketer) Of(mode Mode, t time.Time) (Range, error) {
	switch mode {
	case Day:
		return b.Day(t)
	case Month:
		return b.Month(t)
	default:
		return Range{}, &Error{Mode: mode, Time: t, Reason: "unknown mode"}
	}
}

func (b Bucketer) Day(t time.Time) (Range, error) {
	if err := b.check(Day, t); err != nil {
		return Range{}, err
	}
	start := StartOfDay(t.In(b.loc))
	return Range{Start: start, End: start.AddDate(0, 0, 1)}, nil
}

func (b Bucketer) Month(t time.Time) (Range, error) {
	if err := b.check(Month, t); err != nil {
		return Range{}, err
	}
	local := t.In(b.loc)
	start := time.Date(local.Year(), local.Month(), 1, 0, 0, 0, 0, b.loc)
	return Range{Start: start, End: start.AddDate(0, 1, 0)}, nil
}

func (b Bucketer) check(mode Mode, t time.Time) error {
	if b.loc == nil {
		return &Error{Mode: mode, Time: t, Reason: "no location"}
	}
	if t.IsZero() {
		return &Error{Mode: mode, Time: t, Reason: "zero time"}
	}
	if y := t.In(b.loc).Year(); y < 1 || y > 9999 {
		return &Error{Mode: mode, Time: t, Reason: "year out of range"}
	}
	return nil
}

// DayKey identifies the calendar day of t in the bucketer's location.
func (b Bucketer) DayKey(t time.Time) string {
	return t.In(b.Location()).Format(keyLayout)
}

// ParseDay parses a YYYY-MM-DD day in the bucketer's location.
func (b Bucketer) ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(keyLayout, s, b.Location())
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing day %q: %w", s, err)
	}
	return t, nil
}

// Days yields the start of every calendar day overlapping r.
func Days(r Range) iter.Seq[time.Time] {
	return func(yield func(time.Time) bool) {
		for d := StartOfDay(r.Start); d.Before(r.End); d = d.AddDate(0, 0, 1) {
			if !yield(d) {
				return
			}
		}
	}
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
