package gauge

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/tui/theme"
)

func ptr(f float64) *float64 { return &f }

func TestFill(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		fraction *float64
		want     float64
	}{
		{name: "no data", want: 0},
		{name: "half", fraction: ptr(0.5), want: 0.5},
		{name: "over", fraction: ptr(1.7), want: 1},
		{name: "negative", fraction: ptr(-0.2), want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := New(tt.fraction, "", "X", theme.ColorWater).fill(); got != tt.want {
				t.Errorf("fill() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	out := New(ptr(0.6), "1500m", "DISTANCE", theme.ColorWater).Render()

	if h := lipgloss.Height(out); h != gaugeDotsHeight/4+1 {
		t.Errorf("height = %d, want %d", h, gaugeDotsHeight/4+1)
	}
	if w := lipgloss.Width(out); w != gaugeDotsWidth/2 {
		t.Errorf("width = %d, want %d", w, gaugeDotsWidth/2)
	}
	for _, want := range []string{"1500m", "DISTANCE"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestPlaceholder(t *testing.T) {
	t.Parallel()

	g := New(nil, "", "PACE", theme.ColorWater)
	if g.Text != "--" {
		t.Errorf("Text = %q, want placeholder", g.Text)
	}
}

func TestRenderCells(t *testing.T) {
	t.Parallel()

	plain := lipgloss.NewStyle()
	bg := []rune{emptyBraille, '⠁', '⠁'}
	fg := []rune{emptyBraille, emptyBraille, '⠂'}

	if got := renderCells(bg, fg, plain, plain); got != " ⠁⠃" {
		t.Errorf("renderCells() = %q", got)
	}
}
