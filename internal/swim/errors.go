package swim

import "errors"

var (
	// ErrNoData is returned when a calculation has no qualifying samples or a
	// zero denominator.
	ErrNoData = errors.New("no health data")

	// ErrUnauthorized is returned when health data access was denied or has
	// not been granted yet.
	ErrUnauthorized = errors.New("health data access not authorized")

	ErrUnavailable = errors.New("health data unavailable")
)
