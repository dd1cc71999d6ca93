// Package hrchart plots a heart-rate series as braille dots.
package hrchart

import (
	"fmt"
	"image/color"
	"strings"

	drawille "github.com/exrook/drawille-go"

	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/heartrate"
)

const axisWidth = 4

// Render draws c into a block of width x height terminal cells, with bpm
// labels for the maximum and minimum on the left.
func Render(c heartrate.Chart, width, height int, line color.Color, dim color.Color) string {
	plotWidth := width - axisWidth
	if c.Empty() || plotWidth < 2 || height < 2 {
		return lipgloss.NewStyle().
			Foreground(dim).
			Width(width).
			Height(height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("no heart rate data")
	}

	dotsW, dotsH := plotWidth*2, height*4
	canvas := drawille.NewCanvas()
	for _, p := range Project(c, dotsW, dotsH) {
		canvas.Set(p[0], p[1])
	}

	raw := canvas.Rows(0, 0, dotsW-1, dotsH-1)
	lineStyle := lipgloss.NewStyle().Foreground(line)
	axisStyle := lipgloss.NewStyle().Foreground(dim)

	lines := make([]string, height)
	for i := range lines {
		var label string
		switch i {
		case 0:
			label = fmt.Sprintf("%*d", axisWidth-1, c.Maximum)
		case height - 1:
			label = fmt.Sprintf("%*d", axisWidth-1, c.Minimum)
		default:
			label = strings.Repeat(" ", axisWidth-1)
		}
		row := ""
		if i < len(raw) {
			row = raw[i]
		}
		row = fit(row, plotWidth)
		lines[i] = axisStyle.Render(label+"│") + lineStyle.Render(row)
	}
	return strings.Join(lines, "\n")
}

// Project maps every chart element onto dot coordinates: the cumulative
// offset spans the x axis, bpm spans y with the maximum at the top.
func Project(c heartrate.Chart, dotsW, dotsH int) [][2]int {
	var (
		last   float64
		points [][2]int
	)
	for e := range c.All() {
		last = e.Offset
	}
	if last <= 0 {
		last = 1
	}
	span := c.Maximum - c.Minimum
	for e := range c.All() {
		x := int(e.Offset / last * float64(dotsW-1))
		y := dotsH - 1
		if span > 0 {
			y = int(float64(c.Maximum-e.BPM) / float64(span) * float64(dotsH-1))
		}
		points = append(points, [2]int{x, y})
	}
	return points
}

func fit(row string, width int) string {
	runes := []rune(row)
	if len(runes) >= width {
		return string(runes[:width])
	}
	return row + strings.Repeat(" ", width-len(runes))
}
