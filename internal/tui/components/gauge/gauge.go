package gauge

import (
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/tui/theme"
)

const (
	// gauge dimensions in braille dots (2 dots per char width, 4 dots per char height)
	gaugeDotsWidth  = 36 // 18 chars wide
	gaugeDotsHeight = 36 // 9 chars tall
)

// Gauge is a ring that fills by Fraction with a value printed in the middle.
type Gauge struct {
	Fraction  *float64 // 0..1, nil = no data
	Text      string   // value shown inside the ring
	Label     string
	Color     color.Color
	BgColor   color.Color
	TextColor color.Color
}

type Option func(*Gauge)

func WithBgColor(c color.Color) Option {
	return func(g *Gauge) {
		g.BgColor = c
	}
}

func WithTextColor(c color.Color) Option {
	return func(g *Gauge) {
		g.TextColor = c
	}
}

func New(fraction *float64, text, label string, c color.Color, opts ...Option) Gauge {
	g := Gauge{
		Fraction:  fraction,
		Text:      text,
		Label:     label,
		Color:     c,
		BgColor:   theme.ColorBgLight,
		TextColor: theme.ColorWhite,
	}
	if g.Text == "" {
		g.Text = "--"
	}
	for _, opt := range opts {
		opt(&g)
	}
	return g
}

func (g Gauge) fill() float64 {
	if g.Fraction == nil {
		return 0
	}
	return min(max(*g.Fraction, 0), 1)
}

func (g Gauge) Render() string {
	var (
		cx     = float64(gaugeDotsWidth)/2 - 0.5
		cy     = float64(gaugeDotsHeight)/2 - 0.5
		radius = float64(gaugeDotsWidth)/2 - 1
	)

	bg := drawille.NewCanvas()
	drawArc(&bg, cx, cy, radius, arcSweep)
	fg := drawille.NewCanvas()
	drawArc(&fg, cx, cy, radius, arcSweep*g.fill())

	bgRows := rows(&bg)
	fgRows := rows(&fg)

	var (
		bgStyle   = lipgloss.NewStyle().Foreground(g.BgColor)
		fgStyle   = lipgloss.NewStyle().Foreground(g.Color)
		textStyle = lipgloss.NewStyle().Foreground(g.TextColor).Bold(true)
		mid       = len(bgRows) / 2
		lines     = make([]string, len(bgRows))
	)

	for i := range bgRows {
		var b strings.Builder
		textStart, textEnd := -1, -1
		if i == mid {
			text := []rune(g.Text)
			if len(text) > len(bgRows[i]) {
				text = text[:len(bgRows[i])]
			}
			textStart = (len(bgRows[i]) - len(text)) / 2
			textEnd = textStart + len(text)
			b.WriteString(renderCells(bgRows[i][:textStart], fgRows[i][:textStart], bgStyle, fgStyle))
			b.WriteString(textStyle.Render(string(text)))
			b.WriteString(renderCells(bgRows[i][textEnd:], fgRows[i][textEnd:], bgStyle, fgStyle))
		} else {
			b.WriteString(renderCells(bgRows[i], fgRows[i], bgStyle, fgStyle))
		}
		lines[i] = b.String()
	}

	label := lipgloss.NewStyle().
		Foreground(g.TextColor).
		Bold(true).
		Width(gaugeDotsWidth / 2).
		Align(lipgloss.Center).
		Render(g.Label)

	return lipgloss.JoinVertical(lipgloss.Center, strings.Join(lines, "\n"), label)
}

// rows returns the canvas as fixed-size rune rows so two canvases line up
// cell for cell.
func rows(canvas *drawille.Canvas) [][]rune {
	const (
		charWidth  = gaugeDotsWidth / 2
		charHeight = gaugeDotsHeight / 4
	)
	raw := canvas.Rows(0, 0, gaugeDotsWidth, gaugeDotsHeight)
	out := make([][]rune, charHeight)
	for i := range out {
		row := make([]rune, charWidth)
		for j := range row {
			row[j] = emptyBraille
		}
		if i < len(raw) {
			for j, r := range []rune(raw[i]) {
				if j < charWidth && isBraille(r) {
					row[j] = r
				}
			}
		}
		out[i] = row
	}
	return out
}

const emptyBraille rune = '⠀'

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// renderCells colors each cell by the layer that has dots in it; filled dots
// are ORed onto the background so the ring never shows gaps.
func renderCells(bg, fg []rune, bgStyle, fgStyle lipgloss.Style) string {
	var b strings.Builder
	for j := range bg {
		switch {
		case fg[j] != emptyBraille:
			b.WriteString(fgStyle.Render(string(emptyBraille + (bg[j]-emptyBraille | fg[j]-emptyBraille))))
		case bg[j] != emptyBraille:
			b.WriteString(bgStyle.Render(string(bg[j])))
		default:
			b.WriteRune(' ')
		}
	}
	return b.String()
}
