package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swimlight/internal/importer"
)

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <export.json>",
		Short: "Import a health-data export",
		Long:  "Reads workouts and samples from a JSON export (or - for stdin) into the local store and refreshes the cached workout days.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open export: %w", err)
				}
				defer func() { _ = f.Close() }()
				r = f
			}

			summary, err := importer.New(a.repo, a.logger).Import(ctx, r)
			if err != nil {
				return err
			}
			if _, err := a.service.RefreshWorkoutDates(ctx, time.Now()); err != nil {
				return fmt.Errorf("imported, but refreshing workout days failed: %w", err)
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "imported %s workouts and %s samples\n",
				valueColor.Sprint(humanize.Comma(int64(summary.Workouts))),
				valueColor.Sprint(humanize.Comma(int64(summary.Samples))))
			if !summary.Earliest.IsZero() {
				fmt.Fprintf(w, "covering %s to %s (latest swim %s)\n",
					summary.Earliest.Format(time.DateOnly), summary.Latest.Format(time.DateOnly),
					humanize.Time(summary.Latest))
			}
			return nil
		},
	}
}
