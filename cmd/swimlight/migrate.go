package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/garrettladley/swimlight/internal/migrations"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			// opening the store applies migrations
			a, err := openApp(ctx)
			if err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			w := cmd.OutOrStdout()
			if a.sqlDB != nil {
				applied, err := migrations.Applied(ctx, a.sqlDB)
				if err != nil {
					return err
				}
				for _, name := range applied {
					fmt.Fprintf(w, "%s %s\n", labelColor.Sprint("applied"), name)
				}
			}
			fmt.Fprintln(w, positiveColor.Sprint("Migrations applied successfully"))
			return nil
		},
	}
}
