package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/heartrate"
)

type Theme struct {
	background color.Color
	foreground color.Color
	base       lipgloss.Style
}

func New() Theme {
	var t Theme

	t.background = ColorBgDark
	t.foreground = ColorWhite
	t.base = lipgloss.NewStyle().Foreground(t.foreground)

	return t
}

func (t Theme) Base() lipgloss.Style {
	return t.base
}

func (t Theme) TextAccent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWater)
}

func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorWater).Bold(true)
}

func (t Theme) Dim() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(ColorDim)
}

func (t Theme) Background() color.Color {
	return t.background
}

func (t Theme) Foreground() color.Color {
	return t.foreground
}

func ZoneColor(z heartrate.Zone) color.Color {
	switch z {
	case heartrate.Zone1:
		return ColorZone1
	case heartrate.Zone2:
		return ColorZone2
	case heartrate.Zone3:
		return ColorZone3
	case heartrate.Zone4:
		return ColorZone4
	default:
		return ColorZone5
	}
}
