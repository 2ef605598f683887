package gconf

// optional carries an explicitly present-or-absent value without
// resorting to a pointer sentinel.
type optional[T Value] struct {
	value T
	ok    bool
}

func some[T Value](v T) optional[T] {
	return optional[T]{value: v, ok: true}
}

// policy is one call's resolution policy: an optional default and
// optional inclusive bounds.
type policy[T Value] struct {
	def optional[T]
	min optional[T]
	max optional[T]
}

// resolve is the single validating algorithm behind every entry
// point. Checks run in a fixed order: presence, parse, minimum,
// maximum; the first violated check wins. A supplied default is
// bound-checked the same as a parsed value, so a bad default cannot
// bypass policy.
//
// resolve is a pure function of its arguments: no I/O, no state across
// calls.
func resolve[T Value](src *Source, key string, pol policy[T]) (T, error) {
	var zero T

	var val T
	raw, found := src.Option(key)
	switch {
	case found:
		v, err := parseValue[T](raw)
		if err != nil {
			return zero, &ParamError{
				Kind:   KindMalformed,
				Key:    key,
				Raw:    raw,
				Source: src.String(),
				Cause:  err,
			}
		}
		val = v
	case pol.def.ok:
		val = pol.def.value
	default:
		return zero, &ParamError{
			Kind:   KindMissing,
			Key:    key,
			Source: src.String(),
		}
	}

	if pol.min.ok && compareValue(val, pol.min.value) < 0 {
		return zero, &ParamError{
			Kind:   KindBelowMin,
			Key:    key,
			Value:  formatValue(val),
			Bound:  formatValue(pol.min.value),
			Source: src.String(),
		}
	}
	if pol.max.ok && compareValue(val, pol.max.value) > 0 {
		return zero, &ParamError{
			Kind:   KindAboveMax,
			Key:    key,
			Value:  formatValue(val),
			Bound:  formatValue(pol.max.value),
			Source: src.String(),
		}
	}
	return val, nil
}

// Get resolves a required parameter: absence fails with a
// KindMissing error.
func Get[T Value](src *Source, key string) (T, error) {
	return resolve(src, key, policy[T]{})
}

// GetDefault resolves a parameter, substituting def when the key is
// absent from the source.
func GetDefault[T Value](src *Source, key string, def T) (T, error) {
	return resolve(src, key, policy[T]{def: some(def)})
}

// GetRange resolves a required parameter and checks
// min <= value <= max in T's natural order.
func GetRange[T Value](src *Source, key string, min, max T) (T, error) {
	return resolve(src, key, policy[T]{min: some(min), max: some(max)})
}

// GetDefaultMin resolves a parameter with a default and a minimum.
func GetDefaultMin[T Value](src *Source, key string, def, min T) (T, error) {
	return resolve(src, key, policy[T]{def: some(def), min: some(min)})
}

// GetDefaultMax resolves a parameter with a default and a maximum.
func GetDefaultMax[T Value](src *Source, key string, def, max T) (T, error) {
	return resolve(src, key, policy[T]{def: some(def), max: some(max)})
}

// GetDefaultRange resolves a parameter with a default and inclusive
// bounds.
func GetDefaultRange[T Value](src *Source, key string, def, min, max T) (T, error) {
	return resolve(src, key, policy[T]{def: some(def), min: some(min), max: some(max)})
}
