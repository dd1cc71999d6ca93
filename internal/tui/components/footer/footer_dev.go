//go:build !release

package footer

import (
	"charm.land/lipgloss/v2"

	"github.com/garrettladley/swimlight/internal/tui/theme"
	"github.com/garrettladley/swimlight/internal/version"
)

// leftContent shows the build in dev binaries; unreleased builds stand out.
func (f Footer) leftContent() string {
	v := version.Get()
	c := theme.ColorDim
	if version.IsDevelopment(v) {
		c = theme.ColorWarning
	}
	return lipgloss.NewStyle().Foreground(c).Render("swimlight " + v)
}
