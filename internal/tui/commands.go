package tui

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"
	"golang.org/x/sync/errgroup"

	"github.com/garrettladley/swimlight/internal/report"
	"github.com/garrettladley/swimlight/internal/streak"
	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/tui/page/splash"
	"github.com/garrettladley/swimlight/internal/xslog"
)

func splashTickCmd() tea.Cmd {
	return tea.Tick(splash.Duration, func(time.Time) tea.Msg {
		return splash.TickMsg{}
	})
}

func checkAuthCmd(ctx context.Context, svc *report.Service) tea.Cmd {
	return func() tea.Msg {
		status, err := svc.Authorization(ctx)
		return AuthStatusMsg{Status: status, Err: err}
	}
}

func authorizeCmd(ctx context.Context, a Authorizer) tea.Cmd {
	return func() tea.Msg {
		return AuthorizeResultMsg{Err: a.Set(ctx, swim.AuthorizationAuthorized)}
	}
}

// workoutDatesCmd loads the highlighted days; refresh bypasses the cache.
func workoutDatesCmd(ctx context.Context, deps Deps, refresh bool) tea.Cmd {
	return func() tea.Msg {
		var (
			dates []time.Time
			err   error
			now   = deps.now()
		)
		if refresh {
			dates, err = deps.Service.RefreshWorkoutDates(ctx, now)
		} else {
			dates, err = deps.Service.WorkoutDates(ctx)
		}
		if err != nil {
			xslog.FromContext(ctx).WarnContext(ctx, "failed to load workout dates", xslog.Error(err))
			return WorkoutDatesMsg{Err: err}
		}
		return WorkoutDatesMsg{
			Dates:  dates,
			Streak: streak.Count(dates, now, deps.Service.Bucketer().Location()),
		}
	}
}

// dayReportCmd fetches the day and its month side by side.
func dayReportCmd(ctx context.Context, deps Deps, date time.Time) tea.Cmd {
	return func() tea.Msg {
		msg := DayReportMsg{Date: date}
		logger := xslog.FromContext(ctx)
		start := time.Now()

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			msg.Day, err = deps.Service.Day(gctx, date)
			return err
		})
		g.Go(func() error {
			var err error
			msg.Month, err = deps.Service.Month(gctx, date)
			return err
		})
		if err := g.Wait(); err != nil {
			logger.WarnContext(ctx, "failed to build day report", xslog.Date(date), xslog.Error(err))
			msg.Err = err
			return msg
		}
		logger.DebugContext(ctx, "built day report", xslog.Date(date), xslog.Duration(time.Since(start)))
		return msg
	}
}
