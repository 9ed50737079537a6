package parcel

import "reflect"

// Reserved keys used by backend quirks to tag values the backend cannot
// represent natively at the top level of a document.
const (
	// WrapKey holds a non-mapping top-level value wrapped into a
	// single-entry mapping.
	WrapKey = "_serialized_object"

	// UndefKey marks an absent value for backends that cannot distinguish
	// absent from empty.
	UndefKey = "_serialized_object_is_undef"
)

// Wrap normalizes v for backends that can only represent a keyed mapping at
// the top level. Mappings pass through unchanged; any other value, including
// nil, is wrapped into a single-entry mapping under WrapKey.
func Wrap(v any) any {
	if isMapping(v) {
		return v
	}
	return map[string]any{WrapKey: v}
}

// Unwrap reverses Wrap. A single-entry mapping whose only key is WrapKey
// unwraps to the held value; everything else passes through unchanged.
//
// A genuine mapping whose only entry happens to use WrapKey is
// indistinguishable from a wrapped value and unwraps too. This ambiguity is
// inherent to the scheme and accepted.
func Unwrap(v any) any {
	if m, ok := v.(map[string]any); ok && len(m) == 1 {
		if inner, ok := m[WrapKey]; ok {
			return inner
		}
	}
	return v
}

// WrapAbsent normalizes v for backends that cannot tell an absent value from
// an empty one. Absent becomes a single-entry mapping under UndefKey with a
// true marker; anything else is wrapped as in Wrap.
func WrapAbsent(v any) any {
	if v == nil {
		return map[string]any{UndefKey: true}
	}
	return Wrap(v)
}

// UnwrapAbsent reverses WrapAbsent. The absent marker decodes to nil, a
// wrapped value unwraps, and everything else passes through unchanged.
func UnwrapAbsent(v any) any {
	if m, ok := v.(map[string]any); ok && len(m) == 1 {
		if marker, ok := m[UndefKey]; ok && isTrueMarker(marker) {
			return nil
		}
	}
	return Unwrap(v)
}

// isMapping reports whether v is a keyed mapping: a map with string keys.
func isMapping(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.(map[string]any); ok {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String
}

// isTrueMarker reports whether a decoded marker value means true. Text
// backends decode attributes and leaves as strings, so "1" and "true" count.
func isTrueMarker(v any) bool {
	switch m := v.(type) {
	case bool:
		return m
	case string:
		return m == "1" || m == "true"
	case float64:
		return m != 0
	case int:
		return m != 0
	}
	return false
}
