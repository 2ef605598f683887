package gconf

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is the category shared by every configuration
// failure this package reports. All *ParamError values unwrap to it.
var ErrInvalidConfig = errors.New("invalid configuration")

// Kind identifies which resolution check a parameter failed.
type Kind int

const (
	// KindMissing indicates a required parameter was absent from the source.
	KindMissing Kind = iota

	// KindMalformed indicates the raw option text could not be parsed.
	KindMalformed

	// KindBelowMin indicates the value was below the declared minimum.
	KindBelowMin

	// KindAboveMax indicates the value was above the declared maximum.
	KindAboveMax
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindMalformed:
		return "malformed"
	case KindBelowMin:
		return "below_min"
	case KindAboveMax:
		return "above_max"
	default:
		return "unknown"
	}
}

// ParamError reports one parameter resolution failure.
type ParamError struct {
	// Kind is the check that failed.
	Kind Kind

	// Key is the parameter key being resolved.
	Key string

	// Raw is the option text as found in the source. Set for malformed
	// values.
	Raw string

	// Value is the textual rendering of the value that violated a
	// bound.
	Value string

	// Bound is the textual rendering of the violated bound.
	Bound string

	// Source is the textual representation of the configuration source.
	Source string

	// Cause is the underlying parse error, if any.
	Cause error
}

// Error implements the error interface. The message always names the
// offending key, the value where one exists, and the source text;
// operators diagnose misconfiguration from this message alone.
func (e *ParamError) Error() string {
	switch e.Kind {
	case KindMissing:
		return fmt.Sprintf("param %s not found from uri %s", e.Key, e.Source)
	case KindMalformed:
		if e.Cause != nil {
			return fmt.Sprintf("param %s value %q from uri %s: %v", e.Key, e.Raw, e.Source, e.Cause)
		}
		return fmt.Sprintf("param %s value %q from uri %s: unparseable", e.Key, e.Raw, e.Source)
	case KindBelowMin:
		return fmt.Sprintf("param %s value %s out of range min allowed %s", e.Key, e.Value, e.Bound)
	case KindAboveMax:
		return fmt.Sprintf("param %s value %s out of range max allowed %s", e.Key, e.Value, e.Bound)
	default:
		return fmt.Sprintf("param %s: invalid configuration", e.Key)
	}
}

// Unwrap returns ErrInvalidConfig for errors.Is support.
func (e *ParamError) Unwrap() error {
	return ErrInvalidConfig
}

// paramKind extracts the Kind from err's chain.
func paramKind(err error) (Kind, bool) {
	var pe *ParamError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}

// IsMissing reports whether err is a missing-required-parameter failure.
func IsMissing(err error) bool {
	k, ok := paramKind(err)
	return ok && k == KindMissing
}

// IsMalformed reports whether err is an unparseable-value failure.
func IsMalformed(err error) bool {
	k, ok := paramKind(err)
	return ok && k == KindMalformed
}

// IsBelowMin reports whether err is a below-minimum failure.
func IsBelowMin(err error) bool {
	k, ok := paramKind(err)
	return ok && k == KindBelowMin
}

// IsAboveMax reports whether err is an above-maximum failure.
func IsAboveMax(err error) bool {
	k, ok := paramKind(err)
	return ok && k == KindAboveMax
}
