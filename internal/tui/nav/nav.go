// Package nav carries screen changes through the bubbletea message loop.
// Pages emit Navigate commands; only the root model switches screens.
package nav

import (
	"time"

	tea "charm.land/bubbletea/v2"
)

type Screen uint

const (
	Splash Screen = iota
	Onboarding
	Calendar
	Detail
)

func (s Screen) String() string {
	switch s {
	case Splash:
		return "splash"
	case Onboarding:
		return "onboarding"
	case Calendar:
		return "calendar"
	case Detail:
		return "detail"
	default:
		return "unknown"
	}
}

type NavigateMsg struct {
	Screen Screen
	Date   time.Time
}

func Navigate(screen Screen, date time.Time) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Screen: screen, Date: date}
	}
}
