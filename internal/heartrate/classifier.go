package heartrate

import (
	"github.com/maypok86/otter/v2"
)

const maxCachedTables = 64

// Classifier memoizes zone tables per maximum heart rate.
type Classifier struct {
	tables *otter.Cache[int, Table]
}

func NewClassifier() *Classifier {
	return &Classifier{
		tables: otter.Must(&otter.Options[int, Table]{
			MaximumSize: maxCachedTables,
		}),
	}
}

var defaultClassifier = NewClassifier()

// Table returns the zone table for maxHeartRate, building it on first use.
func (c *Classifier) Table(maxHeartRate int) Table {
	if t, ok := c.tables.GetIfPresent(maxHeartRate); ok {
		return t
	}
	t := NewTable(maxHeartRate)
	c.tables.Set(maxHeartRate, t)
	return t
}

func (c *Classifier) Classify(bpm, maxHeartRate int) (Zone, bool) {
	return c.Table(maxHeartRate).Classify(bpm)
}

func Classify(bpm, maxHeartRate int) (Zone, bool) {
	return defaultClassifier.Classify(bpm, maxHeartRate)
}
