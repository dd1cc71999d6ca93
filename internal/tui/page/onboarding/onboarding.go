// Package onboarding is the prompt shown while swimlight may not read swim
// samples. Granting access is recorded in the local store.
package onboarding

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/tui/page/splash"
	"github.com/garrettladley/swimlight/internal/tui/theme"
)

type Phase uint

const (
	PhaseWelcome Phase = iota
	PhaseAuthorizing
	PhaseError
)

type State struct {
	Phase    Phase
	Status   swim.AuthorizationStatus
	ErrorMsg string
}

func View(t theme.Theme, state State, width, height int) string {
	var content string

	switch state.Phase {
	case PhaseWelcome:
		content = welcomeView(t, state.Status)
	case PhaseAuthorizing:
		content = authorizingView(t)
	case PhaseError:
		content = errorView(t, state.ErrorMsg)
	}

	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

func welcomeView(t theme.Theme, status swim.AuthorizationStatus) string {
	title := "Allow swimlight to read your swims"
	subtitle := "Workouts, distance, energy, heart rate and stroke counts"
	if status == swim.AuthorizationDenied {
		title = "Access to swim data was denied"
		subtitle = "Reports stay empty until access is granted again"
	}

	buttonStyle := lipgloss.NewStyle().
		Foreground(theme.ColorBgDark).
		Background(theme.ColorWater).
		Padding(0, 2).
		Bold(true)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		t.Title().Render(title),
		"",
		t.Base().Render(subtitle),
		"",
		"",
		buttonStyle.Render("Press Enter to allow"),
		"",
		t.Dim().Render("Revoke any time with: swimlight authorize --revoke"),
	)
}

func authorizingView(t theme.Theme) string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		t.Title().Render("Authorizing..."),
	)
}

func errorView(t theme.Theme, msg string) string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		splash.LogoView(t),
		"",
		"",
		lipgloss.NewStyle().Foreground(theme.ColorNegative).Bold(true).Render("Authorization failed"),
		"",
		lipgloss.NewStyle().Foreground(theme.ColorNegative).Render(msg),
		"",
		t.Dim().Render("Press Enter to try again, or q to quit"),
	)
}
