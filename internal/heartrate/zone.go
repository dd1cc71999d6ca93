package heartrate

import (
	"fmt"
	"math"
)

type Zone int

const (
	Zone1 Zone = iota + 1
	Zone2
	Zone3
	Zone4
	Zone5
)

const DefaultMaxHeartRate = 190

// Zones returns every zone sorted ascending by id.
func Zones() []Zone {
	return []Zone{Zone1, Zone2, Zone3, Zone4, Zone5}
}

// MaxPercentage is the zone's upper bound as a percentage of maximum heart rate.
func (z Zone) MaxPercentage() int {
	switch z {
	case Zone1:
		return 74
	case Zone2:
		return 84
	case Zone3:
		return 88
	case Zone4:
		return 95
	case Zone5:
		return 100
	default:
		return 0
	}
}

func (z Zone) String() string {
	if z < Zone1 || z > Zone5 {
		return fmt.Sprintf("zone(%d)", int(z))
	}
	return fmt.Sprintf("zone%d", int(z))
}

func (z Zone) Description() string {
	switch z {
	case Zone1:
		return "light"
	case Zone2:
		return "moderate"
	case Zone3:
		return "hard"
	case Zone4:
		return "very hard"
	case Zone5:
		return "maximum"
	default:
		return ""
	}
}

// Range is a closed interval of beats per minute.
type Range struct {
	Min int
	Max int
}

func (r Range) Contains(bpm int) bool {
	return bpm >= r.Min && bpm <= r.Max
}

func (r Range) Unbounded() bool { return r.Max == math.MaxInt }

func (r Range) String() string {
	if r.Unbounded() {
		return fmt.Sprintf("%d+", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Table maps each zone to its bpm range for one maximum heart rate. It is
// immutable once built.
type Table struct {
	maxHeartRate int
	ranges       [5]Range
}

// NewTable builds contiguous, non-overlapping ranges: each zone spans from
// the previous zone's upper bound + 1 to pct*maxHR/100, and the last zone
// absorbs everything above.
func NewTable(maxHeartRate int) Table {
	t := Table{maxHeartRate: maxHeartRate}

	lower := 0
	zones := Zones()
	for i, z := range zones {
		upper := z.MaxPercentage() * maxHeartRate / 100
		if i == len(zones)-1 {
			upper = math.MaxInt
		}
		t.ranges[i] = Range{Min: lower, Max: upper}
		lower = upper + 1
	}
	return t
}

func (t Table) MaxHeartRate() int { return t.maxHeartRate }

func (t Table) Range(z Zone) (Range, bool) {
	if z < Zone1 || z > Zone5 {
		return Range{}, false
	}
	return t.ranges[z-1], true
}

// Classify returns the first zone, in ascending order, whose range holds bpm.
func (t Table) Classify(bpm int) (Zone, bool) {
	for i, r := range t.ranges {
		if r.Contains(bpm) {
			return Zone(i + 1), true
		}
	}
	return 0, false
}
