//go:build !release

package main

import (
	"bytes"
	"fmt"
	"math/rand/v2"
	"time"

	go_json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/importer"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/version"
)

func addDevCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(seedCmd())
}

func seedCmd() *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Import generated demo swims",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			now := time.Now()
			export := demoExport(daterange.StartOfDay(now.In(a.bucketer.Location())), days, rand.New(rand.NewPCG(1, 2)))

			var buf bytes.Buffer
			if err := go_json.NewEncoder(&buf).Encode(export); err != nil {
				return fmt.Errorf("encode demo export: %w", err)
			}

			summary, err := importer.New(a.repo, a.logger).Import(ctx, &buf)
			if err != nil {
				return err
			}
			if _, err := a.service.RefreshWorkoutDates(ctx, now); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "seeded %d workouts and %d samples\n", summary.Workouts, summary.Samples)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 60, "days of history to generate")
	return cmd
}

// demoExport swims most mornings: 50m lengths with heart rate every 10s.
func demoExport(today time.Time, days int, rng *rand.Rand) importer.Export {
	ex := importer.Export{ExportedBy: version.Get()}
	for i := range days {
		if rng.IntN(3) == 0 {
			continue
		}
		start := today.AddDate(0, 0, -i).Add(7*time.Hour + time.Duration(rng.IntN(60))*time.Minute)
		lengths := 20 + rng.IntN(30)
		style := swim.StrokeFreestyle + swim.StrokeStyle(rng.IntN(4))
		t := start
		for range lengths {
			d := time.Duration(45+rng.IntN(30)) * time.Second
			ex.Samples = append(ex.Samples,
				importer.ExportSample{Kind: swim.KindDistance.String(), Start: t, End: t.Add(d), Value: 50},
				importer.ExportSample{Kind: swim.KindStrokeCount.String(), Start: t, End: t.Add(d), Value: float64(18 + rng.IntN(8)), StrokeStyle: int(style)},
			)
			for hr := t; hr.Before(t.Add(d)); hr = hr.Add(10 * time.Second) {
				ex.Samples = append(ex.Samples, importer.ExportSample{
					Kind: swim.KindHeartRate.String(), Start: hr, End: hr, Value: float64(120 + rng.IntN(60)),
				})
			}
			t = t.Add(d)
		}
		ex.Samples = append(ex.Samples, importer.ExportSample{
			Kind: swim.KindEnergy.String(), Start: start, End: t, Value: float64(250 + rng.IntN(250)),
		})
		ex.Workouts = append(ex.Workouts, importer.ExportWorkout{ID: "demo-" + start.Format(time.DateOnly), Start: start, End: t})
	}
	return ex
}
