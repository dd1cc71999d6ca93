package auth

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/tui/theme"
)

const statusDot = "●"

// Indicator shows whether swimlight may read swim samples.
type Indicator struct {
	Checked bool
	Status  swim.AuthorizationStatus
}

func (a Indicator) Render() string {
	if !a.Checked {
		return lipgloss.NewStyle().
			Foreground(theme.ColorBgLight).
			Render(statusDot + " checking...")
	}

	switch a.Status {
	case swim.AuthorizationAuthorized:
		return lipgloss.NewStyle().
			Foreground(theme.ColorPositive).
			Render(statusDot + " authorized")
	case swim.AuthorizationDenied:
		return lipgloss.NewStyle().
			Foreground(theme.ColorNegative).
			Render(statusDot + " access denied")
	default:
		return lipgloss.NewStyle().
			Foreground(theme.ColorWarning).
			Render(statusDot + " not authorized")
	}
}
