package main

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/garrettladley/swimlight/internal/tui"
	"github.com/garrettladley/swimlight/internal/xslog"
)

func tuiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch the interactive TUI",
		Long:  "Opens the full-screen calendar of swim workouts with per-day reports.",
		RunE:  runTUI,
	}
}

func runTUI(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	a, err := openApp(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = a.Close() }()
	defer func() {
		if r := recover(); r != nil {
			a.logger.ErrorContext(ctx, "tui panicked", xslog.ErrorAny(r), xslog.Stack())
			panic(r)
		}
	}()

	model := tui.New(tui.Deps{
		Ctx:        ctx,
		Logger:     a.logger,
		Service:    a.service,
		Authorizer: a.repo.Authorization,
		Now:        time.Now,
	})

	p := tea.NewProgram(&model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
