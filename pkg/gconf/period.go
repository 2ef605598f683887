package gconf

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Period is a duration decoded from an ISO-8601-like representation
// P[nD][T[nH][nM][nS]], where the seconds field may carry a fractional
// component. Examples: PT1S, PT1M30S, P1DT6H, PT0.3S.
//
// A Period holds a single linear magnitude, so differently spelled but
// equal durations compare equal. Fractional seconds pass through a
// float conversion; a fractional value compared against a bound can see
// rounding error right at the boundary.
type Period time.Duration

// periodRE accepts the day/hour/minute/second subset of ISO-8601
// durations. The anchors reject trailing characters, signs, and fields
// out of designator order.
var periodRE = regexp.MustCompile(`^P(?:([0-9]+)D)?(?:T(?:([0-9]+)H)?(?:([0-9]+)M)?(?:([0-9]+(?:\.[0-9]*)?)S)?)?$`)

// ParsePeriod decodes an ISO-8601 period string. Strings without the
// leading P designator, with negative or repeated fields, or with
// trailing characters are rejected; a partially decoded value is never
// returned.
func ParsePeriod(s string) (Period, error) {
	m := periodRE.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("not an ISO-8601 period")
	}

	var d time.Duration
	if m[1] != "" {
		days, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("days field: %w", err)
		}
		d += time.Duration(days) * 24 * time.Hour
	}
	if m[2] != "" {
		hours, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("hours field: %w", err)
		}
		d += time.Duration(hours) * time.Hour
	}
	if m[3] != "" {
		mins, err := strconv.ParseInt(m[3], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("minutes field: %w", err)
		}
		d += time.Duration(mins) * time.Minute
	}
	if m[4] != "" {
		secs, err := strconv.ParseFloat(m[4], 64)
		if err != nil {
			return 0, fmt.Errorf("seconds field: %w", err)
		}
		d += time.Duration(secs * float64(time.Second))
	}
	return Period(d), nil
}

// Duration returns the period as a time.Duration.
func (p Period) Duration() time.Duration {
	return time.Duration(p)
}

// String renders the period in ISO-8601 form. The fractional seconds
// rendering is exact, so ParsePeriod(p.String()) returns p for any
// non-negative p.
func (p Period) String() string {
	d := time.Duration(p)
	if d < 0 {
		// ISO-8601 has no negative periods; rendered for debugging only.
		return "-" + Period(-d).String()
	}

	var b strings.Builder
	b.WriteByte('P')
	if days := d / (24 * time.Hour); days > 0 {
		fmt.Fprintf(&b, "%dD", days)
		d -= days * 24 * time.Hour
	}
	if d == 0 && b.Len() > 1 {
		return b.String()
	}
	b.WriteByte('T')
	if h := d / time.Hour; h > 0 {
		fmt.Fprintf(&b, "%dH", h)
		d -= h * time.Hour
	}
	if m := d / time.Minute; m > 0 {
		fmt.Fprintf(&b, "%dM", m)
		d -= m * time.Minute
	}
	secs := d / time.Second
	frac := d % time.Second
	switch {
	case frac != 0:
		fracDigits := strings.TrimRight(fmt.Sprintf("%09d", frac), "0")
		fmt.Fprintf(&b, "%d.%sS", secs, fracDigits)
	case secs > 0 || b.String() == "PT":
		fmt.Fprintf(&b, "%dS", secs)
	}
	return b.String()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Period) UnmarshalText(text []byte) error {
	v, err := ParsePeriod(string(text))
	if err != nil {
		return fmt.Errorf("invalid period %q: %w", string(text), err)
	}
	*p = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (p Period) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}
