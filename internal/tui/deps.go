package tui

import (
	"context"
	"log/slog"
	"time"

	"github.com/garrettladley/swimlight/internal/report"
	"github.com/garrettladley/swimlight/internal/swim"
)

// Authorizer records the user's answer to the access prompt.
type Authorizer interface {
	Set(ctx context.Context, status swim.AuthorizationStatus) error
}

type Deps struct {
	Ctx        context.Context
	Logger     *slog.Logger
	Service    *report.Service
	Authorizer Authorizer
	Now        func() time.Time
}

func (d Deps) now() time.Time {
	if d.Now == nil {
		return time.Now()
	}
	return d.Now()
}
