package xerrors

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/swim"
)

func TestKindOf(t *testing.T) {
	t.Parallel()

	_, rangeErr := daterange.New(time.UTC).Day(time.Time{})

	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{name: "no data", err: fmt.Errorf("pace: %w", swim.ErrNoData), want: KindNoData},
		{name: "unauthorized", err: fmt.Errorf("fetch: %w", swim.ErrUnauthorized), want: KindUnauthorized},
		{name: "unavailable", err: swim.ErrUnavailable, want: KindUnavailable},
		{name: "date range", err: fmt.Errorf("day: %w", rangeErr), want: KindDateRange},
		{name: "canceled", err: fmt.Errorf("fetch: %w", context.Canceled), want: KindCanceled},
		{name: "typed", err: Validation(map[string]string{"x": "bad"}), want: KindValidation},
		{name: "unknown", err: errors.New("disk on fire"), want: KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	err := Internal(WithMessage("open store"), WithCause(errors.New("locked")))
	if err.Error() != "open store: locked" {
		t.Errorf("Error() = %q", err.Error())
	}
	if NoData().Error() != "no data" {
		t.Errorf("NoData().Error() = %q", NoData().Error())
	}
}
