package theme

import "charm.land/lipgloss/v2"

var (
	ColorBlack = lipgloss.Color("#000000")
	ColorWhite = lipgloss.Color("#FFFFFF")
	ColorDim   = lipgloss.Color("#666666")
)

var (
	ColorWater    = lipgloss.Color("#2EC4F1") // accent, workout days, chart line
	ColorLane     = lipgloss.Color("#1B6FA8") // selection and secondary accents
	ColorPositive = lipgloss.Color("#16EC06") // above month average
	ColorNegative = lipgloss.Color("#FF5A5F") // below month average, errors
	ColorWarning  = lipgloss.Color("#FFDE00") // authorization prompts
)

// zone colors, coolest to hottest
var (
	ColorZone1 = lipgloss.Color("#67AEE6")
	ColorZone2 = lipgloss.Color("#00F19F")
	ColorZone3 = lipgloss.Color("#FFDE00")
	ColorZone4 = lipgloss.Color("#FF9F1C")
	ColorZone5 = lipgloss.Color("#FF0026")
)

var (
	ColorBgDark  = lipgloss.Color("#0B1A24") // Darker end of gradient
	ColorBgLight = lipgloss.Color("#1F3A4D") // Lighter end of gradient
)
