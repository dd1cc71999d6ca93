package tui

import (
	"time"

	"github.com/garrettladley/swimlight/internal/report"
	"github.com/garrettladley/swimlight/internal/swim"
)

type AuthStatusMsg struct {
	Status swim.AuthorizationStatus
	Err    error
}

type AuthorizeResultMsg struct {
	Err error
}

type WorkoutDatesMsg struct {
	Dates  []time.Time
	Streak int
	Err    error
}

type DayReportMsg struct {
	Date  time.Time
	Day   *report.DayReport
	Month *report.MonthReport
	Err   error
}
