package swim

// StrokeStyle is keyed by the integer code the health platform attaches to
// stroke-count samples.
type StrokeStyle int

const (
	StrokeUnknown StrokeStyle = iota
	StrokeMixed
	StrokeFreestyle
	StrokeBackstroke
	StrokeBreaststroke
	StrokeButterfly
	StrokeKickBoard
)

func StrokeStyleFromCode(code int) StrokeStyle {
	s := StrokeStyle(code)
	if s < StrokeUnknown || s > StrokeKickBoard {
		return StrokeUnknown
	}
	return s
}

// StrokeStyles returns every known style in display order, unknown last.
func StrokeStyles() []StrokeStyle {
	return []StrokeStyle{
		StrokeFreestyle,
		StrokeBackstroke,
		StrokeBreaststroke,
		StrokeButterfly,
		StrokeMixed,
		StrokeKickBoard,
		StrokeUnknown,
	}
}

func (s StrokeStyle) String() string {
	switch s {
	case StrokeMixed:
		return "mixed"
	case StrokeFreestyle:
		return "freestyle"
	case StrokeBackstroke:
		return "backstroke"
	case StrokeBreaststroke:
		return "breaststroke"
	case StrokeButterfly:
		return "butterfly"
	case StrokeKickBoard:
		return "kickboard"
	default:
		return "unknown"
	}
}
