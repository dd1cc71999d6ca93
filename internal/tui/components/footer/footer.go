package footer

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/tui/theme"
)

// Hint is one key binding shown in the footer, e.g. {"enter", "details"}.
type Hint struct {
	Key  string
	Desc string
}

type Footer struct {
	hints   []Hint
	width   int
	padding int
}

func New(width int, hints ...Hint) Footer {
	return Footer{
		hints:   hints,
		width:   width,
		padding: 2,
	}
}

var (
	keyStyle  = lipgloss.NewStyle().Foreground(theme.ColorWater)
	descStyle = lipgloss.NewStyle().Foreground(theme.ColorDim)
)

func (f Footer) rightContent() string {
	parts := make([]string, 0, len(f.hints))
	for _, h := range f.hints {
		parts = append(parts, keyStyle.Render(h.Key)+" "+descStyle.Render(h.Desc))
	}
	return strings.Join(parts, descStyle.Render(" · "))
}

func (f Footer) Render() string {
	leftContent := f.leftContent()
	rightContent := f.rightContent()

	leftWidth := lipgloss.Width(leftContent)
	rightWidth := lipgloss.Width(rightContent)
	spacerWidth := max(f.width-leftWidth-rightWidth-(f.padding*2), 0)

	return lipgloss.NewStyle().
		PaddingLeft(f.padding).
		PaddingRight(f.padding).
		PaddingBottom(1).
		Render(leftContent + strings.Repeat(" ", spacerWidth) + rightContent)
}
