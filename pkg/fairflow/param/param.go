// Package param holds engine hyperparameter sets and the resolution rule
// that merges user overrides with engine-declared defaults.
package param

// Params maps a hyperparameter name to its value.
type Params map[string]any

// Merge resolves a complete hyperparameter set from engine defaults and
// user overrides. Every key declared in defaults is present in the result,
// with the user value winning key-by-key. Keys the user supplies but the
// engine never declared pass through untouched, so callers can feed
// forward-compatible options to newer engine builds.
//
// Neither input is mutated.
func Merge(user, defaults Params) Params {
	resolved := make(Params, len(defaults)+len(user))
	for name, value := range defaults {
		resolved[name] = value
	}
	for name, value := range user {
		resolved[name] = value
	}

	return resolved
}

// Float reads a float64 parameter, accepting the numeric types YAML and
// plain Go literals commonly produce.
func (p Params) Float(name string, fallback float64) float64 {
	switch v := p[name].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return fallback
	}
}

// Int reads an int parameter.
func (p Params) Int(name string, fallback int) int {
	switch v := p[name].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

// Bool reads a bool parameter.
func (p Params) Bool(name string, fallback bool) bool {
	if v, ok := p[name].(bool); ok {
		return v
	}

	return fallback
}

// String reads a string parameter.
func (p Params) String(name, fallback string) string {
	if v, ok := p[name].(string); ok {
		return v
	}

	return fallback
}
