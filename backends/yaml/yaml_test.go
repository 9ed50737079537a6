package yaml

import (
	"reflect"
	"testing"

	"github.com/RobertWHurst/parcel"
)

func TestRoundTrip(t *testing.T) {
	values := []any{
		"Foo",
		[]any{"a", "b", "c"},
		map[string]any{"key": "value", "other": "thing"},
		nil,
	}

	for _, original := range values {
		s := parcel.NewWithBackend(Name)

		data, err := s.Serialize(original)
		if err != nil {
			t.Fatalf("Serialize(%#v) failed: %v", original, err)
		}

		decoded, err := s.Deserialize(data)
		if err != nil {
			t.Fatalf("Deserialize failed for %#v: %v", original, err)
		}

		if !reflect.DeepEqual(decoded, original) {
			t.Errorf("Expected %#v after round trip, got %#v", original, decoded)
		}
	}
}

func TestSerializeNilIsNullDocument(t *testing.T) {
	s := parcel.NewWithBackend(Name)

	data, err := s.Serialize(nil)
	if err != nil {
		t.Fatalf("Serialize(nil) failed: %v", err)
	}

	if string(data) != "null\n" {
		t.Errorf("Expected null document, got %q", string(data))
	}
}

func TestNestedMappingRoundTrip(t *testing.T) {
	s := parcel.NewWithBackend(Name)

	original := map[string]any{
		"outer": map[string]any{"inner": "value"},
		"list":  []any{"a", "b"},
	}

	data, err := s.Serialize(original)
	if err != nil {
		t.Fatalf("Serialize() failed: %v", err)
	}

	decoded, err := s.Deserialize(data)
	if err != nil {
		t.Fatalf("Deserialize() failed: %v", err)
	}

	if !reflect.DeepEqual(decoded, original) {
		t.Errorf("Expected %#v, got %#v", original, decoded)
	}
}

func TestDeserializeInvalidYAML(t *testing.T) {
	s := parcel.NewWithBackend(Name)

	if _, err := s.Deserialize([]byte("key: [unclosed")); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}
