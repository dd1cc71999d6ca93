// Package storage persists the list of calendar days that had a swim workout,
// so the calendar and streak render before the sample store answers.
package storage

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/garrettladley/swimlight/internal/daterange"
)

// ErrNotFound is returned by Load when nothing has been saved yet.
var ErrNotFound = errors.New("workout dates not cached")

type DateCache interface {
	Load(ctx context.Context) ([]time.Time, error)
	// Save replaces the cached list.
	Save(ctx context.Context, dates []time.Time) error
}

// payload is the persisted form: one "2006-01-02" entry per day, ascending.
type payload struct {
	Days []string `json:"days"`
}

func encode(dates []time.Time, b daterange.Bucketer) payload {
	seen := make(map[string]struct{}, len(dates))
	days := make([]string, 0, len(dates))
	for _, d := range dates {
		key := b.DayKey(d)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		days = append(days, key)
	}
	slices.Sort(days)
	return payload{Days: days}
}

func decode(p payload, b daterange.Bucketer) ([]time.Time, error) {
	dates := make([]time.Time, 0, len(p.Days))
	for _, s := range p.Days {
		t, err := b.ParseDay(s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, t)
	}
	return dates, nil
}
