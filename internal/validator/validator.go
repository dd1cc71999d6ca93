// Package validator turns field-level checks into a single validation error
// that names every offending field.
package validator

import (
	"maps"
	"slices"
	"strings"

	"github.com/garrettladley/swimlight/internal/xerrors"
)

type Validator interface {
	// Validate returns problems keyed by field (or env var) name, or nil.
	Validate() map[string]string
}

// Validate runs every validator and merges their problems. It returns nil when
// all pass.
func Validate(vs ...Validator) *xerrors.Error {
	fields := make(map[string]string)
	for _, v := range vs {
		maps.Copy(fields, v.Validate())
	}
	if len(fields) == 0 {
		return nil
	}
	return xerrors.Validation(fields, xerrors.WithMessage("invalid "+Summary(fields)))
}

// Summary renders problems as "field: problem" pairs in field order.
func Summary(fields map[string]string) string {
	parts := make([]string, 0, len(fields))
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		parts = append(parts, k+": "+fields[k])
	}
	return strings.Join(parts, "; ")
}
