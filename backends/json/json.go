// Package json provides the JSON backend for parcel.
// It registers itself under the name "json" when imported.
//
// The backend treats a JSON document as object-only at the top level, so
// scalar, sequence, and absent values are wrapped into a single-entry object
// under parcel.WrapKey before encoding and unwrapped after decoding.
package json

import (
	jsoniter "github.com/json-iterator/go"

	"github.com/RobertWHurst/parcel"
)

// Name is the identifier this backend registers under.
const Name = "json"

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Backend implements parcel.Backend using JSON serialization. It produces
// human-readable output that works well for debugging and interchange.
type Backend struct{}

var _ parcel.Backend = Backend{}

// Encode serializes v to JSON bytes.
func (Backend) Encode(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Decode deserializes JSON bytes into a value. Objects decode as
// map[string]any, arrays as []any, numbers as float64.
func (Backend) Decode(data []byte) (any, error) {
	var v any
	if err := api.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func init() {
	parcel.Register(parcel.Registration{
		Name:   Name,
		New:    func() (parcel.Backend, error) { return Backend{}, nil },
		Wrap:   parcel.Wrap,
		Unwrap: parcel.Unwrap,
	})
}
