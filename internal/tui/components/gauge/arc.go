package gauge

import (
	"math"

	drawille "github.com/exrook/drawille-go"
)

const (
	// screen coords: 0°=3 o'clock, angles grow clockwise because y points down.
	// the ring opens at the bottom like a lap counter dial.
	arcStartAngle = 135.0
	arcSweep      = 270.0
	arcThickness  = 3
)

// drawArc plots a thick arc by sampling each radius densely enough that
// neighbouring dots touch.
func drawArc(canvas *drawille.Canvas, cx, cy, radius float64, sweep float64) {
	if sweep <= 0 {
		return
	}
	for t := range arcThickness {
		r := radius - float64(t)
		if r <= 0 {
			continue
		}
		// one sample per half dot of circumference
		steps := int(math.Ceil(2 * r * sweep * math.Pi / 180))
		for i := 0; i <= steps; i++ {
			angle := (arcStartAngle + sweep*float64(i)/float64(steps)) * math.Pi / 180
			x := int(math.Round(cx + r*math.Cos(angle)))
			y := int(math.Round(cy + r*math.Sin(angle)))
			canvas.Set(x, y)
		}
	}
}
