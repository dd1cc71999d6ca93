package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/xslog"
)

func authorizeCmd() *cobra.Command {
	var revoke bool

	cmd := &cobra.Command{
		Use:   "authorize",
		Short: "Allow swimlight to read swim data",
		Long:  "Records that swimlight may read workouts and samples from the store. Use --revoke to deny access.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			status := swim.AuthorizationAuthorized
			if revoke {
				status = swim.AuthorizationDenied
			}
			if err := a.repo.Authorization.Set(ctx, status); err != nil {
				return fmt.Errorf("failed to save authorization: %w", err)
			}
			a.logger.InfoContext(ctx, "authorization changed", "status", status)

			if revoke {
				fmt.Fprintln(cmd.OutOrStdout(), negativeColor.Sprint("access revoked"))
				return nil
			}
			// Days cached while access was denied are empty.
			if _, err := a.service.RefreshWorkoutDates(ctx, time.Now()); err != nil {
				a.logger.WarnContext(ctx, "failed to refresh workout dates", xslog.Error(err))
			}
			fmt.Fprintln(cmd.OutOrStdout(), positiveColor.Sprint("access granted"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&revoke, "revoke", false, "deny access instead")
	return cmd
}
