package main

import (
	"fmt"
	"os"

	"github.com/cli/browser"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swimlight/internal/chart"
)

func chartCmd() *cobra.Command {
	var (
		date string
		out  string
		open bool
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Write a day's heart rate chart to HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			day, err := parseDate(a.bucketer, date)
			if err != nil {
				return err
			}

			rep, err := a.service.Day(ctx, day)
			if err != nil {
				return err
			}
			if !rep.Chart.OK() {
				return fmt.Errorf("no heart rate chart for %s: %w", day.Format("2006-01-02"), rep.Chart.Err)
			}

			cs := []components.Charter{chart.HeartRateLine(rep.Chart.Value, rep.Date)}
			if rep.Zones.OK() {
				cs = append(cs, chart.ZoneBar(rep.Zones.Value, a.service.ZoneTable()))
			}

			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", out, err)
			}
			if err := chart.Render(f, cs...); err != nil {
				_ = f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", out)
			if open {
				if err := browser.OpenFile(out); err != nil {
					return fmt.Errorf("failed to open %s: %w", out, err)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&date, "date", "d", "", "day to chart, YYYY-MM-DD (default today)")
	cmd.Flags().StringVarP(&out, "out", "o", "heart_rate.html", "output HTML file")
	cmd.Flags().BoolVar(&open, "open", false, "open the chart in a browser")
	return cmd
}
