package report

// Result holds one independently fetched metric. A failing metric never
// blocks the others; Err is classified with xerrors.KindOf for display.
type Result[T any] struct {
	Value T
	Err   error
	// Done is false until the fetch finished, which distinguishes a metric
	// still loading (or cancelled before it started) from a zero value.
	Done bool
}

func (r Result[T]) OK() bool { return r.Done && r.Err == nil }

func ok[T any](v T) Result[T] { return Result[T]{Value: v, Done: true} }

func failed[T any](err error) Result[T] { return Result[T]{Err: err, Done: true} }

func from[T any](v T, err error) Result[T] {
	if err != nil {
		return failed[T](err)
	}
	return ok(v)
}
