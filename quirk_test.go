package parcel

import (
	"reflect"
	"testing"
)

func TestWrapPassesThroughMappings(t *testing.T) {
	values := []any{
		map[string]any{"key": "value"},
		map[string]string{"key": "value"},
		map[string]any{},
	}

	for _, v := range values {
		if wrapped := Wrap(v); !reflect.DeepEqual(wrapped, v) {
			t.Errorf("Expected mapping %#v to pass through, got %#v", v, wrapped)
		}
	}
}

func TestWrapWrapsNonMappings(t *testing.T) {
	values := []any{"Foo", []any{"a", "b"}, 42, nil}

	for _, v := range values {
		wrapped := Wrap(v)
		expected := map[string]any{WrapKey: v}
		if !reflect.DeepEqual(wrapped, expected) {
			t.Errorf("Expected %#v, got %#v", expected, wrapped)
		}
	}
}

func TestUnwrapReversesWrap(t *testing.T) {
	values := []any{"Foo", []any{"a", "b"}, map[string]any{"key": "value"}}

	for _, v := range values {
		if unwrapped := Unwrap(Wrap(v)); !reflect.DeepEqual(unwrapped, v) {
			t.Errorf("Expected %#v after wrap/unwrap, got %#v", v, unwrapped)
		}
	}
}

func TestUnwrapAmbiguousReservedKey(t *testing.T) {
	// A genuine mapping whose only entry uses the reserved key unwraps to
	// its inner value. This is the documented, accepted ambiguity.
	v := map[string]any{WrapKey: "inner"}

	if unwrapped := Unwrap(v); unwrapped != "inner" {
		t.Errorf("Expected \"inner\", got %#v", unwrapped)
	}
}

func TestUnwrapPassesThroughMultiEntryMappings(t *testing.T) {
	v := map[string]any{WrapKey: "inner", "other": "entry"}

	if unwrapped := Unwrap(v); !reflect.DeepEqual(unwrapped, v) {
		t.Errorf("Expected pass-through, got %#v", unwrapped)
	}
}

func TestWrapAbsentMarksNil(t *testing.T) {
	expected := map[string]any{UndefKey: true}

	if wrapped := WrapAbsent(nil); !reflect.DeepEqual(wrapped, expected) {
		t.Errorf("Expected %#v, got %#v", expected, wrapped)
	}
}

func TestWrapAbsentWrapsOtherValues(t *testing.T) {
	wrapped := WrapAbsent("Foo")
	expected := map[string]any{WrapKey: "Foo"}

	if !reflect.DeepEqual(wrapped, expected) {
		t.Errorf("Expected %#v, got %#v", expected, wrapped)
	}
}

func TestUnwrapAbsentMarkerForms(t *testing.T) {
	// Text backends decode the marker as a string, binary ones as a bool.
	markers := []any{true, "1", "true", float64(1)}

	for _, marker := range markers {
		v := map[string]any{UndefKey: marker}
		if unwrapped := UnwrapAbsent(v); unwrapped != nil {
			t.Errorf("Expected nil for marker %#v, got %#v", marker, unwrapped)
		}
	}
}

func TestUnwrapAbsentFalseMarkerPassesThrough(t *testing.T) {
	v := map[string]any{UndefKey: false}

	if unwrapped := UnwrapAbsent(v); !reflect.DeepEqual(unwrapped, v) {
		t.Errorf("Expected pass-through for false marker, got %#v", unwrapped)
	}
}

func TestUnwrapAbsentFallsBackToUnwrap(t *testing.T) {
	if unwrapped := UnwrapAbsent(map[string]any{WrapKey: "Foo"}); unwrapped != "Foo" {
		t.Errorf("Expected \"Foo\", got %#v", unwrapped)
	}
}
