package gconf_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/groupwire/gconf/pkg/gconf"
)

// TestParsePeriod verifies decoding of the accepted ISO-8601 subset.
func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"PT1S", time.Second},
		{"PT1M30S", 90 * time.Second},
		{"P1DT6H", 30 * time.Hour},
		{"PT0.3S", 300 * time.Millisecond},
		{"PT0.05S", 50 * time.Millisecond},
		{"PT5M", 5 * time.Minute},
		{"P2D", 48 * time.Hour},
		{"PT36H", 36 * time.Hour},
		{"PT0S", 0},
		{"P", 0},
		{"PT", 0},
		{"P1DT2H3M4S", 26*time.Hour + 3*time.Minute + 4*time.Second},
		{"PT1.S", time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := gconf.ParsePeriod(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Duration())
		})
	}
}

// TestParsePeriodInvalid verifies rejection of malformed period text:
// a missing designator, negative or misordered fields, fractions
// outside the seconds field, and trailing characters all fail.
func TestParsePeriodInvalid(t *testing.T) {
	inputs := []string{
		"",
		"1S",
		"5s",
		"T1S",
		"PT1S1M",
		"PT1M1H",
		"P1DT1S1M",
		"PT1H2H",
		"-PT1S",
		"PT-1S",
		"P-1D",
		"PT1.5M",
		"P0.5D",
		"PT1Sx",
		"xPT1S",
		"PT1,5S",
		"PT1S ",
		" PT1S",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			_, err := gconf.ParsePeriod(in)
			assert.Error(t, err)
		})
	}
}

// TestPeriodString verifies the ISO-8601 rendering.
func TestPeriodString(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "PT0S"},
		{time.Second, "PT1S"},
		{90 * time.Second, "PT1M30S"},
		{5 * time.Minute, "PT5M"},
		{30 * time.Hour, "P1DT6H"},
		{24 * time.Hour, "P1D"},
		{300 * time.Millisecond, "PT0.3S"},
		{50 * time.Millisecond, "PT0.05S"},
		{26*time.Hour + 3*time.Minute + 4*time.Second, "P1DT2H3M4S"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, gconf.Period(tt.d).String())
		})
	}
}

// TestPeriodStringRoundTrip verifies ParsePeriod(p.String()) == p.
func TestPeriodStringRoundTrip(t *testing.T) {
	durations := []time.Duration{
		0,
		1 * time.Nanosecond,
		time.Millisecond,
		300 * time.Millisecond,
		time.Second,
		90 * time.Second,
		time.Hour,
		24 * time.Hour,
		30*time.Hour + 500*time.Millisecond,
	}

	for _, d := range durations {
		p := gconf.Period(d)
		got, err := gconf.ParsePeriod(p.String())
		require.NoError(t, err, "rendering %s", p)
		assert.Equal(t, p, got, "rendering %s", p)
	}
}

// TestPeriodTextMarshaling verifies the encoding.Text round trip.
func TestPeriodTextMarshaling(t *testing.T) {
	p := gconf.Period(90 * time.Second)

	text, err := p.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "PT1M30S", string(text))

	var back gconf.Period
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, p, back)

	var bad gconf.Period
	err = bad.UnmarshalText([]byte("10 seconds"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10 seconds")
}
