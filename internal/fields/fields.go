// Package fields provides type-checked lookup into untyped API
// responses.
//
// Extraction API payloads arrive as map[string]any: any key may be
// absent, null, or hold a value of an unexpected type. Fetch is the
// single defense between those payloads and event construction.
package fields

// Fetch returns the value under key only when it is present and its
// dynamic type is exactly T. Anything else, including a null or a
// value of the wrong type, reports false. It never panics.
func Fetch[T any](m map[string]any, key string) (T, bool) {
	var zero T
	raw, ok := m[key]
	if !ok {
		return zero, false
	}
	value, ok := raw.(T)
	if !ok {
		return zero, false
	}
	return value, true
}
