// Package importer ingests a health-data JSON export into the sample store.
package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/garrettladley/swimlight/internal/repository"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/version"
	"github.com/garrettladley/swimlight/internal/xslog"
)

const batchSize = 500

type Export struct {
	// ExportedBy is the swimlight version that wrote the export, if any.
	ExportedBy string          `json:"exported_by,omitempty"`
	Workouts   []ExportWorkout `json:"workouts"`
	Samples    []ExportSample  `json:"samples"`
}

type ExportWorkout struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type ExportSample struct {
	Kind        string    `json:"kind"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
	Value       float64   `json:"value"`
	StrokeStyle int       `json:"stroke_style"`
}

type Summary struct {
	Workouts int
	Samples  int
	Earliest time.Time
	Latest   time.Time
}

type Importer struct {
	repo   *repository.Repository
	logger *slog.Logger
}

func New(repo *repository.Repository, logger *slog.Logger) *Importer {
	return &Importer{repo: repo, logger: logger}
}

var workoutNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("swimlight:workout"))

// WorkoutID derives a stable id from a workout's time window, so importing
// the same id-less export twice upserts the same rows.
func WorkoutID(start, end time.Time) string {
	name := start.UTC().Format(time.RFC3339Nano) + "/" + end.UTC().Format(time.RFC3339Nano)
	return uuid.NewSHA1(workoutNamespace, []byte(name)).String()
}

// Decode parses and validates an export without touching the store.
func Decode(r io.Reader) ([]swim.Workout, []swim.Sample, error) {
	exp, err := read(r)
	if err != nil {
		return nil, nil, err
	}
	return exp.convert()
}

func read(r io.Reader) (Export, error) {
	var exp Export
	if err := go_json.NewDecoder(r).Decode(&exp); err != nil {
		return Export{}, fmt.Errorf("decode export: %w", err)
	}
	return exp, nil
}

// convert validates every record, reporting all failures at once.
func (exp Export) convert() ([]swim.Workout, []swim.Sample, error) {
	var errs []error
	workouts := make([]swim.Workout, 0, len(exp.Workouts))
	for i, w := range exp.Workouts {
		if w.End.Before(w.Start) {
			errs = append(errs, fmt.Errorf("workout %d: end %s before start %s", i, w.End.Format(time.RFC3339), w.Start.Format(time.RFC3339)))
			continue
		}
		workouts = append(workouts, swim.Workout{ID: w.ID, Start: w.Start, End: w.End})
	}

	samples := make([]swim.Sample, 0, len(exp.Samples))
	for i, s := range exp.Samples {
		kind, err := swim.ParseKind(s.Kind)
		if err != nil {
			errs = append(errs, fmt.Errorf("sample %d: %w", i, err))
			continue
		}
		end := s.End
		if end.IsZero() {
			end = s.Start
		}
		if end.Before(s.Start) {
			errs = append(errs, fmt.Errorf("sample %d: end before start", i))
			continue
		}
		samples = append(samples, swim.Sample{
			Kind:        kind,
			Start:       s.Start,
			End:         end,
			Value:       s.Value,
			StrokeStyle: swim.StrokeStyleFromCode(s.StrokeStyle),
		})
	}

	if err := errors.Join(errs...); err != nil {
		return nil, nil, err
	}
	return workouts, samples, nil
}

// Import validates the whole export before writing any of it. Workouts
// without an id get one from WorkoutID.
func (im *Importer) Import(ctx context.Context, r io.Reader) (Summary, error) {
	exp, err := read(r)
	if err != nil {
		return Summary{}, err
	}
	if exp.ExportedBy != "" && version.IsNewer(version.Get(), exp.ExportedBy) {
		im.logger.WarnContext(ctx, "export written by a newer swimlight",
			slog.String("exported_by", exp.ExportedBy), xslog.Version())
	}

	workouts, samples, err := exp.convert()
	if err != nil {
		return Summary{}, err
	}

	for i := range workouts {
		if workouts[i].ID == "" {
			workouts[i].ID = WorkoutID(workouts[i].Start, workouts[i].End)
		}
	}

	for chunk := range slices.Chunk(workouts, batchSize) {
		if err := im.repo.Workouts.UpsertBatch(ctx, chunk); err != nil {
			return Summary{}, fmt.Errorf("import workouts: %w", err)
		}
	}
	for chunk := range slices.Chunk(samples, batchSize) {
		if err := im.repo.Samples.UpsertBatch(ctx, chunk); err != nil {
			return Summary{}, fmt.Errorf("import samples: %w", err)
		}
	}

	sum := summarize(workouts, samples)
	im.logger.InfoContext(ctx, "imported export",
		xslog.Count(sum.Workouts+sum.Samples),
		xslog.Start(sum.Earliest),
		xslog.End(sum.Latest))
	return sum, nil
}

func summarize(workouts []swim.Workout, samples []swim.Sample) Summary {
	sum := Summary{Workouts: len(workouts), Samples: len(samples)}
	observe := func(t time.Time) {
		if sum.Earliest.IsZero() || t.Before(sum.Earliest) {
			sum.Earliest = t
		}
		if t.After(sum.Latest) {
			sum.Latest = t
		}
	}
	for _, w := range workouts {
		observe(w.Start)
	}
	for _, s := range samples {
		observe(s.Start)
	}
	return sum
}
