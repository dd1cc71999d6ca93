package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/swimlight/internal/config"
	"github.com/garrettladley/swimlight/internal/heartrate"
)

func zonesCmd() *cobra.Command {
	var maxHR int

	cmd := &cobra.Command{
		Use:   "zones",
		Short: "Print the heart rate zone table",
		Long:  "Prints the bpm range of each zone for a maximum heart rate (SWIMLIGHT_MAX_HEART_RATE by default).",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if maxHR == 0 {
				cfg, err := config.Read()
				if err != nil {
					return fmt.Errorf("failed to read config: %w", err)
				}
				maxHR = cfg.MaxHeartRate
			}
			if maxHR < 1 {
				return fmt.Errorf("--max must be positive, got %d", maxHR)
			}

			table := heartrate.NewTable(maxHR)
			w := cmd.OutOrStdout()
			titleColor.Fprintf(w, "zones for max heart rate %d\n", table.MaxHeartRate())
			for _, z := range heartrate.Zones() {
				r, _ := table.Range(z)
				fmt.Fprintf(w, "%s %s %s\n", z, valueColor.Sprintf("%-8s", r), labelColor.Sprint(z.Description()))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&maxHR, "max", 0, "maximum heart rate in bpm")
	return cmd
}
