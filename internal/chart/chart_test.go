package chart

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/garrettladley/swimlight/internal/heartrate"
)

func TestRender(t *testing.T) {
	t.Parallel()

	start := time.Date(2024, 10, 1, 7, 0, 0, 0, time.UTC)
	c := heartrate.BuildChart([][]heartrate.Point{{
		{Time: start, BPM: 120},
		{Time: start.Add(10 * time.Second), BPM: 140},
		{Time: start.Add(30 * time.Second), BPM: 150},
	}})
	zones := map[heartrate.Zone]time.Duration{heartrate.Zone2: 90 * time.Second}

	var buf bytes.Buffer
	err := Render(&buf, HeartRateLine(c, start), ZoneBar(zones, heartrate.NewTable(190)))
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	html := buf.String()
	for _, want := range []string{"Heart rate 2024-10-01", "Heart rate zones", "zone2 (141-159)", "max heart rate 190 bpm"} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}
