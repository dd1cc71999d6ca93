package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func streakCmd() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "streak",
		Short: "Print the current run of consecutive swim days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			now := time.Now()
			if refresh {
				if _, err := a.service.RefreshWorkoutDates(ctx, now); err != nil {
					return err
				}
			}

			n, err := a.service.Streak(ctx, now)
			if err != nil {
				return err
			}

			unit := "days"
			if n == 1 {
				unit = "day"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", valueColor.Sprint(n), unit)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "rebuild the cached workout days from the store first")
	return cmd
}
