package gconf

import (
	"fmt"
	"net/url"
	"strings"
)

// Option is one key/value pair carried in a connection string's query
// portion.
type Option struct {
	Key   string
	Value string
}

// Source is an immutable, already-parsed view over a connection
// string: its scheme, host and port plus the ordered option pairs from
// the query portion. One Source is built per connection attempt and
// discarded with it.
//
// Lookup is exact-match and never applies a default; defaulting is the
// resolver caller's concern. A Source is safe for concurrent use.
type Source struct {
	scheme  string
	host    string
	port    string
	options []Option
}

// NewSource builds a Source from already-parsed parts. The options
// slice is copied.
func NewSource(scheme, host, port string, options []Option) *Source {
	s := &Source{scheme: scheme, host: host, port: port}
	s.options = append(s.options, options...)
	return s
}

// Parse builds a Source from a connection string of the form
// scheme://[host[:port]][?key1=val1&key2=val2...]. Tokenization of the
// string is delegated to net/url.
func Parse(raw string) (*Source, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse connection string: %w", err)
	}
	return FromURL(u)
}

// FromURL adapts an already-parsed URL. The query portion is split
// into pairs with their original order preserved, unlike url.Values.
func FromURL(u *url.URL) (*Source, error) {
	opts, err := splitQuery(u.RawQuery)
	if err != nil {
		return nil, err
	}
	return NewSource(u.Scheme, u.Hostname(), u.Port(), opts), nil
}

// splitQuery breaks an already-isolated query string into ordered
// key/value pairs.
func splitQuery(rawQuery string) ([]Option, error) {
	if rawQuery == "" {
		return nil, nil
	}
	var opts []Option
	for _, tok := range strings.Split(rawQuery, "&") {
		if tok == "" {
			continue
		}
		k, v, _ := strings.Cut(tok, "=")
		key, err := url.QueryUnescape(k)
		if err != nil {
			return nil, fmt.Errorf("option key %q: %w", k, err)
		}
		val, err := url.QueryUnescape(v)
		if err != nil {
			return nil, fmt.Errorf("option value for %q: %w", key, err)
		}
		opts = append(opts, Option{Key: key, Value: val})
	}
	return opts, nil
}

// Scheme returns the connection string's scheme, or "" when absent.
func (s *Source) Scheme() string {
	return s.scheme
}

// Host returns the connection string's host, or "" when absent.
func (s *Source) Host() string {
	return s.host
}

// Port returns the connection string's port, or "" when absent.
func (s *Source) Port() string {
	return s.port
}

// Option returns the raw text for key, matched exactly and
// case-sensitively. When the same key appears more than once the last
// occurrence wins, so options appended later override earlier ones
// (profile defaults under connection-string options, for example).
func (s *Source) Option(key string) (string, bool) {
	for i := len(s.options) - 1; i >= 0; i-- {
		if s.options[i].Key == key {
			return s.options[i].Value, true
		}
	}
	return "", false
}

// Options returns a copy of the ordered option pairs.
func (s *Source) Options() []Option {
	out := make([]Option, len(s.options))
	copy(out, s.options)
	return out
}

// String reconstructs the connection string text. Error messages embed
// it, so it stays close to what the operator originally wrote.
func (s *Source) String() string {
	var b strings.Builder
	if s.scheme != "" {
		b.WriteString(s.scheme)
		b.WriteString("://")
	}
	b.WriteString(s.host)
	if s.port != "" {
		b.WriteByte(':')
		b.WriteString(s.port)
	}
	for i, opt := range s.options {
		if i == 0 {
			b.WriteByte('?')
		} else {
			b.WriteByte('&')
		}
		b.WriteString(opt.Key)
		b.WriteByte('=')
		b.WriteString(opt.Value)
	}
	return b.String()
}
