package splash

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/tui/theme"
)

const Duration = 1500 * time.Millisecond

const Logo = `
 ┏━┓╻ ╻╻┏┳┓╻  ╻┏━╸╻ ╻╺┳╸
 ┗━┓┃╻┃┃┃┃┃┃  ┃┃╺┓┣━┫ ┃
 ┗━┛┗┻┛╹╹ ╹┗━╸╹┗━┛╹ ╹ ╹`

const waves = "~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~ ~"

type TickMsg struct{}

func LogoView(t theme.Theme) string {
	return lipgloss.JoinVertical(
		lipgloss.Center,
		t.TextAccent().Render(Logo),
		"",
		t.Dim().Render(waves),
	)
}

func View(t theme.Theme, width, height int) string {
	return lipgloss.Place(
		width,
		height,
		lipgloss.Center,
		lipgloss.Center,
		LogoView(t),
	)
}
