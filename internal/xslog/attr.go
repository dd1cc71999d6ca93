package xslog

import (
	"log/slog"
	"runtime/debug"
	"time"

	"github.com/garrettladley/swimlight/internal/swim"
	"github.com/garrettladley/swimlight/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func ErrorAny(err any) slog.Attr {
	return slog.Any(keyError, err)
}

func Stack() slog.Attr {
	const stackKey = "stack"
	return slog.String(stackKey, string(debug.Stack()))
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Start(t time.Time) slog.Attr {
	const startKey = "start"
	return slog.Time(startKey, t)
}

func End(t time.Time) slog.Attr {
	const endKey = "end"
	return slog.Time(endKey, t)
}

func Date(t time.Time) slog.Attr {
	const dateKey = "date"
	return slog.String(dateKey, t.Format(time.DateOnly))
}

func Metric(name string) slog.Attr {
	const metricKey = "metric"
	return slog.String(metricKey, name)
}

func Kind(kind swim.Kind) slog.Attr {
	const kindKey = "kind"
	return slog.String(kindKey, kind.String())
}

func Attempt(n uint) slog.Attr {
	const attemptKey = "attempt"
	return slog.Uint64(attemptKey, uint64(n))
}

func MaxHeartRate(bpm int) slog.Attr {
	const maxHeartRateKey = "max_heart_rate"
	return slog.Int(maxHeartRateKey, bpm)
}

func Path(p string) slog.Attr {
	const pathKey = "path"
	return slog.String(pathKey, p)
}

func Screen(name string) slog.Attr {
	const screenKey = "screen"
	return slog.String(screenKey, name)
}
