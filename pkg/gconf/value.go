package gconf

import (
	"cmp"
	"strconv"
	"strings"
)

// Mask is an integer whose bits are independently meaningful flags.
// Option text is converted with a base-0 integer parse, so decimal
// ("12"), hex ("0xc") and octal ("014") spellings are all accepted.
type Mask uint64

// String renders the mask in hex, the form the parse accepts back.
func (m Mask) String() string {
	return "0x" + strconv.FormatUint(uint64(m), 16)
}

// Value enumerates the option value types the resolver understands.
// Period covers ISO-8601 durations, Mask covers log masks, and the
// rest map to their Go counterparts.
type Value interface {
	bool | int | string | Mask | Period
}

// parseValue converts raw option text to a T. The conversion is
// deterministic and never yields a partially parsed value.
func parseValue[T Value](raw string) (T, error) {
	var v T
	switch p := any(&v).(type) {
	case *bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return v, err
		}
		*p = b
	case *int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return v, err
		}
		*p = n
	case *string:
		*p = raw
	case *Mask:
		n, err := strconv.ParseUint(raw, 0, 64)
		if err != nil {
			return v, err
		}
		*p = Mask(n)
	case *Period:
		d, err := ParsePeriod(raw)
		if err != nil {
			return v, err
		}
		*p = d
	}
	return v, nil
}

// formatValue renders v in the textual form parseValue accepts.
func formatValue[T Value](v T) string {
	switch x := any(v).(type) {
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case string:
		return x
	case Mask:
		return x.String()
	case Period:
		return x.String()
	}
	return ""
}

// compareValue orders a against b in T's natural order, returning -1,
// 0 or +1. Booleans order false before true; periods compare by total
// elapsed magnitude, so differently formatted but equal durations
// compare equal.
func compareValue[T Value](a, b T) int {
	switch x := any(a).(type) {
	case bool:
		y := any(b).(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		default:
			return 1
		}
	case int:
		return cmp.Compare(x, any(b).(int))
	case string:
		return strings.Compare(x, any(b).(string))
	case Mask:
		return cmp.Compare(x, any(b).(Mask))
	case Period:
		return cmp.Compare(x, any(b).(Period))
	}
	return 0
}

// Encode renders v in the textual form the resolver accepts: resolving
// the returned text yields a value equal to v.
func Encode[T Value](v T) string {
	return formatValue(v)
}
