package provider

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/swim"
)

var _ Provider = (*Memory)(nil)

// Memory is an in-process Provider used by tests and the demo data path.
type Memory struct {
	mu       sync.RWMutex
	bucketer daterange.Bucketer
	status   swim.AuthorizationStatus
	offline  bool
	workouts []swim.Workout
	samples  map[swim.Kind][]swim.Sample
	calls    map[string]int
}

func NewMemory(bucketer daterange.Bucketer) *Memory {
	return &Memory{
		bucketer: bucketer,
		status:   swim.AuthorizationAuthorized,
		samples:  make(map[swim.Kind][]swim.Sample),
		calls:    make(map[string]int),
	}
}

func (m *Memory) SetAuthorization(status swim.AuthorizationStatus) {
	m.mu.Lock()
	m.status = status
	m.mu.Unlock()
}

func (m *Memory) SetAvailable(available bool) {
	m.mu.Lock()
	m.offline = !available
	m.mu.Unlock()
}

func (m *Memory) AddWorkouts(workouts ...swim.Workout) {
	m.mu.Lock()
	m.workouts = append(m.workouts, workouts...)
	slices.SortStableFunc(m.workouts, func(a, b swim.Workout) int { return a.Start.Compare(b.Start) })
	m.mu.Unlock()
}

func (m *Memory) AddSamples(samples ...swim.Sample) {
	m.mu.Lock()
	for _, s := range samples {
		m.samples[s.Kind] = append(m.samples[s.Kind], s)
	}
	for kind := range m.samples {
		slices.SortStableFunc(m.samples[kind], func(a, b swim.Sample) int { return a.Start.Compare(b.Start) })
	}
	m.mu.Unlock()
}

// Calls reports how many times the named fetch method ran.
func (m *Memory) Calls(method string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.calls[method]
}

func (m *Memory) record(method string) {
	m.mu.Lock()
	m.calls[method]++
	m.mu.Unlock()
}

func (m *Memory) Available(context.Context) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return !m.offline
}

func (m *Memory) Authorization(context.Context) (swim.AuthorizationStatus, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.offline {
		return "", swim.ErrUnavailable
	}
	return m.status, nil
}

func (m *Memory) FetchWorkouts(ctx context.Context, start, end time.Time) ([]swim.Workout, error) {
	m.record("FetchWorkouts")
	if err := requireAuthorized(ctx, m); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []swim.Workout
	for _, w := range m.workouts {
		if !w.Start.Before(start) && w.Start.Before(end) {
			out = append(out, w)
		}
	}
	return out, nil
}

func (m *Memory) FetchQuantitySamples(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.Sample, error) {
	m.record("FetchQuantitySamples")
	if err := requireAuthorized(ctx, m); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []swim.Sample
	for _, s := range m.samples[kind] {
		if !s.Start.Before(start) && s.Start.Before(end) {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *Memory) FetchDailyStatistics(ctx context.Context, kind swim.Kind, start, end time.Time) ([]swim.DailyBucket, error) {
	samples, err := m.FetchQuantitySamples(ctx, kind, start, end)
	if err != nil {
		return nil, err
	}
	return Bucket(samples, m.bucketer)
}
