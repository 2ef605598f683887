/*
Package gconf resolves typed configuration parameters for the layers of
a group-communication stack (transport, membership and consensus
protocols) from a single URI-style connection string.

# Overview

A stack is configured with one connection string of the form

	scheme://[host[:port]][?key1=val1&key2=val2...]

The scheme selects which component family the remaining options
configure; the query options parameterize its layers. Each layer holds a
*Source (the already-parsed view over the connection string) and asks
the resolver once per parameter it needs, stating the key, the target
type and its policy: required, defaulted, or bounded. The resolver
returns a validated typed value or a *ParamError, which the layer treats
as fatal to its own construction.

The library has three parts:

  - The parameter catalog: key constants and declarative Specs for every
    recognized key (type, default, bounds).
  - The resolver: one generic algorithm behind the Get* entry points,
    covering booleans, integers, strings, bitmasks and ISO-8601 periods.
  - Layer packages (evs, gmcast) that resolve a whole layer's
    configuration, including bounds that depend on another parameter's
    resolved value.

# Basic Usage

Parse a connection string and resolve parameters against it:

	src, err := gconf.Parse("gmcast://192.168.3.1:4567?gmcast.group=cluster&evs.suspect_timeout=PT10S")
	if err != nil {
	    log.Fatal(err)
	}

	group, err := gconf.Get[string](src, gconf.GMCastGroup)
	suspect, err := gconf.GetDefault(src, gconf.EVSSuspectTimeout, gconf.Period(5*time.Second))
	window, err := gconf.GetDefaultMin(src, gconf.EVSSendWindow, 32, 1)

Durations use the ISO-8601 representation: PT1S is one second, PT1M30S
one minute thirty seconds, P1DT6H one day and six hours. Seconds accept
a fractional part (PT0.3S) for sub-second precision.

# Resolution Policy

Every entry point runs the same checks in the same order: presence,
parse, minimum, maximum. The first violated check wins. A key absent
from the source resolves to the supplied default, and the default is
bound-checked exactly like a parsed value; a key absent with no default
is an error. Lookup in the Source never applies a default of its own.

# Cross-Key Bounds

Some bounds are only known relative to another parameter's resolved
value: the inactivity check period, for example, must not exceed half
the suspect timeout. The resolver knows nothing about key
relationships. Resolve the referenced key first and pass its value as
the bound:

	suspect, err := gconf.GetDefault(src, gconf.EVSSuspectTimeout, gconf.Period(5*time.Second))
	check, err := gconf.GetDefaultRange(src, gconf.EVSInactiveCheckPeriod,
	    gconf.Period(time.Second), gconf.Period(100*time.Millisecond), suspect/2)

The evs and gmcast packages do this wiring for their layers.

# Errors

Every failure is a *ParamError distinguished by Kind (missing,
malformed, below minimum, above maximum) and unwraps to
ErrInvalidConfig. The message names the offending key, the value where
one exists, and the connection string, since operators diagnose
misconfiguration from that text. Configuration errors are static: they
recur identically on retry, so callers fail their own startup instead of
retrying.

# Concurrency

A Source is immutable after construction and the resolver holds no
state across calls, so concurrent resolution against one Source needs no
locking.
*/
package gconf
