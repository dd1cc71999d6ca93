package heartrate

import (
	"time"
)

// GapThreshold is the longest interval between two samples that is still
// attributed to a zone. Longer spans mean the sensor was not recording.
const GapThreshold = 5 * time.Minute

type Point struct {
	Time time.Time
	BPM  int
}

// Aggregate sums time spent in each zone across points in ascending time
// order. Each interval is attributed to the zone of the sample that closes
// it. Negative intervals and intervals above GapThreshold reset the walk
// and are dropped.
func (c *Classifier) Aggregate(points []Point, maxHeartRate int) map[Zone]time.Duration {
	var (
		table    = c.Table(maxHeartRate)
		res      = make(map[Zone]time.Duration)
		previous *time.Time
	)

	for i := range points {
		p := points[i]
		zone, ok := table.Classify(p.BPM)
		if !ok {
			continue
		}

		if previous == nil {
			previous = &points[i].Time
			continue
		}

		interval := p.Time.Sub(*previous)
		if interval < 0 || interval > GapThreshold {
			previous = nil
			continue
		}

		res[zone] += interval
		previous = &points[i].Time
	}

	return res
}

func Aggregate(points []Point, maxHeartRate int) map[Zone]time.Duration {
	return defaultClassifier.Aggregate(points, maxHeartRate)
}

// Total sums every zone's duration.
func Total(zones map[Zone]time.Duration) time.Duration {
	var total time.Duration
	for _, d := range zones {
		total += d
	}
	return total
}
