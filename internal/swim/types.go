package swim

import "time"

type Sample struct {
	Start       time.Time   `json:"start"`
	End         time.Time   `json:"end"`
	Value       float64     `json:"value"`
	Kind        Kind        `json:"kind"`
	StrokeStyle StrokeStyle `json:"stroke_style,omitempty"`
}

type Workout struct {
	ID    string    `json:"id"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Workout) Duration() time.Duration {
	if w.End.Before(w.Start) {
		return 0
	}
	return w.End.Sub(w.Start)
}

// DailyBucket is the summed quantity of one kind over a single calendar day.
type DailyBucket struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Sum   float64   `json:"sum"`
}
