// Package yaml provides the YAML backend for parcel.
// It registers itself under the name "yaml" when imported.
//
// YAML represents scalars, sequences, mappings, and null natively at the top
// level, so no quirk normalization applies.
package yaml

import (
	"gopkg.in/yaml.v3"

	"github.com/RobertWHurst/parcel"
)

// Name is the identifier this backend registers under.
const Name = "yaml"

// Backend implements parcel.Backend using YAML serialization.
type Backend struct{}

var _ parcel.Backend = Backend{}

// Encode serializes v to a YAML document.
func (Backend) Encode(v any) ([]byte, error) {
	return yaml.Marshal(v)
}

// Decode deserializes a YAML document into a value. Mappings decode as
// map[string]any, sequences as []any.
func (Backend) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func init() {
	parcel.Register(parcel.Registration{
		Name: Name,
		New:  func() (parcel.Backend, error) { return Backend{}, nil },
	})
}
