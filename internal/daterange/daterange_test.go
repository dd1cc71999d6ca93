package daterange

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func mustLoad(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	if err != nil {
		t.Skipf("timezone %s unavailable: %v", name, err)
	}
	return loc
}

func TestBucketerDay(t *testing.T) {
	t.Parallel()

	b := New(time.UTC)
	got, err := b.Day(time.Date(2024, 9, 30, 17, 45, 12, 0, time.UTC))
	if err != nil {
		t.Fatalf("Day() error = %v", err)
	}
	want := Range{
		Start: time.Date(2024, 9, 30, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Day() mismatch (-want +got):\n%s", diff)
	}
}

func TestBucketerDayAcrossDST(t *testing.T) {
	t.Parallel()

	loc := mustLoad(t, "America/New_York")
	b := New(loc)

	got, err := b.Day(time.Date(2024, 3, 10, 12, 0, 0, 0, loc))
	if err != nil {
		t.Fatalf("Day() error = %v", err)
	}
	if got.End.Sub(got.Start) != 23*time.Hour {
		t.Errorf("DST day length = %v, want 23h", got.End.Sub(got.Start))
	}
	if got.End.Hour() != 0 {
		t.Errorf("End hour = %d, want midnight", got.End.Hour())
	}
}

func TestBucketerMonth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   time.Time
		want Range
	}{
		{
			name: "mid month",
			in:   time.Date(2024, 9, 18, 9, 0, 0, 0, time.UTC),
			want: Range{
				Start: time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "december rolls year",
			in:   time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC),
			want: Range{
				Start: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			name: "leap february",
			in:   time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
			want: Range{
				Start: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
				End:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	b := New(time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := b.Month(tt.in)
			if err != nil {
				t.Fatalf("Month() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Month() mismatch (-want +got):\n%s", diff)
			}
			if !got.Contains(tt.in) {
				t.Errorf("range %v does not contain %v", got, tt.in)
			}
			if got.Contains(got.End) {
				t.Error("range end must be exclusive")
			}
		})
	}
}

func TestBucketerErrors(t *testing.T) {
	t.Parallel()

	var rangeErr *Error

	_, err := New(time.UTC).Day(time.Time{})
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Day(zero) error = %v, want *Error", err)
	}
	if rangeErr.Mode != Day {
		t.Errorf("Mode = %v, want day", rangeErr.Mode)
	}

	_, err = New(nil).Month(time.Now())
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Month(nil loc) error = %v, want *Error", err)
	}

	_, err = New(time.UTC).Of(Mode(9), time.Now())
	if !errors.As(err, &rangeErr) {
		t.Fatalf("Of(unknown) error = %v, want *Error", err)
	}
}

func TestDays(t *testing.T) {
	t.Parallel()

	r := Range{
		Start: time.Date(2024, 2, 27, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC),
	}
	var got []int
	for d := range Days(r) {
		got = append(got, d.Day())
	}
	want := []int{27, 28, 29, 1}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Days() mismatch (-want +got):\n%s", diff)
	}
}

func TestDayKey(t *testing.T) {
	t.Parallel()

	loc := time.FixedZone("KST", 9*60*60)
	b := New(loc)
	// 20:00 UTC is already the next day in KST.
	got := b.DayKey(time.Date(2024, 9, 30, 20, 0, 0, 0, time.UTC))
	if got != "2024-10-01" {
		t.Errorf("DayKey() = %q, want 2024-10-01", got)
	}

	parsed, err := b.ParseDay("2024-10-01")
	if err != nil {
		t.Fatalf("ParseDay() error = %v", err)
	}
	if parsed.Location() != loc || parsed.Hour() != 0 {
		t.Errorf("ParseDay() = %v", parsed)
	}
}
