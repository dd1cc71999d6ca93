// Package xerrors classifies failures for presentation. Domain code returns
// plain wrapped errors; callers that render them ask for the Kind.
package xerrors

import (
	"context"
	"errors"

	"github.com/garrettladley/swimlight/internal/daterange"
	"github.com/garrettladley/swimlight/internal/swim"
)

type Kind uint8

const (
	KindInternal Kind = iota
	KindNoData
	KindDateRange
	KindUnauthorized
	KindUnavailable
	KindCanceled
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindNoData:
		return "no data"
	case KindDateRange:
		return "date range"
	case KindUnauthorized:
		return "unauthorized"
	case KindUnavailable:
		return "unavailable"
	case KindCanceled:
		return "canceled"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

type Error struct {
	Kind       Kind
	Message    string
	Cause      error
	Validation *ValidationInfo
}

type ValidationInfo struct {
	Fields map[string]string
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Cause }

func NoData(opts ...Option) *Error       { return newErr(KindNoData, opts) }
func DateRange(opts ...Option) *Error    { return newErr(KindDateRange, opts) }
func Unauthorized(opts ...Option) *Error { return newErr(KindUnauthorized, opts) }
func Unavailable(opts ...Option) *Error  { return newErr(KindUnavailable, opts) }
func Internal(opts ...Option) *Error     { return newErr(KindInternal, opts) }

func Validation(fields map[string]string, opts ...Option) *Error {
	e := newErr(KindValidation, opts)
	e.Validation = &ValidationInfo{Fields: fields}
	return e
}

func newErr(kind Kind, opts []Option) *Error {
	e := &Error{Kind: kind, Message: kind.String()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

type Option func(*Error)

func WithMessage(msg string) Option { return func(e *Error) { e.Message = msg } }
func WithCause(err error) Option    { return func(e *Error) { e.Cause = err } }

func As(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// KindOf maps err onto the category a screen renders. A nil error is
// KindInternal; callers check for nil first.
func KindOf(err error) Kind {
	if e := As(err); e != nil {
		return e.Kind
	}
	var dr *daterange.Error
	switch {
	case errors.As(err, &dr):
		return KindDateRange
	case errors.Is(err, swim.ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, swim.ErrNoData):
		return KindNoData
	case errors.Is(err, swim.ErrUnavailable):
		return KindUnavailable
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return KindCanceled
	default:
		return KindInternal
	}
}
