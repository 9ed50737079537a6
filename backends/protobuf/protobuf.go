// Package protobuf provides a protobuf backend for parcel, built on the
// well-known Struct/Value types so arbitrary JSON-like values can travel as
// a single protobuf message. It registers itself under the name "protobuf"
// when imported.
package protobuf

import (
	"fmt"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/RobertWHurst/parcel"
)

// Name is the identifier this backend registers under.
const Name = "protobuf"

// Backend implements parcel.Backend by converting values through
// structpb.Value. The representable domain is JSON-like: nil, bool, numbers,
// string, []byte, []any, and map[string]any. Anything else is an encode
// error. Numbers decode as float64.
type Backend struct{}

var _ parcel.Backend = Backend{}

// Encode converts v to a structpb.Value and marshals it.
func (Backend) Encode(v any) ([]byte, error) {
	pv, err := structpb.NewValue(v)
	if err != nil {
		return nil, fmt.Errorf("protobuf: %w", err)
	}
	return proto.Marshal(pv)
}

// Decode unmarshals a structpb.Value and returns its Go form.
func (Backend) Decode(data []byte) (any, error) {
	pv := &structpb.Value{}
	if err := proto.Unmarshal(data, pv); err != nil {
		return nil, fmt.Errorf("protobuf: %w", err)
	}
	return pv.AsInterface(), nil
}

func init() {
	parcel.Register(parcel.Registration{
		Name: Name,
		New:  func() (parcel.Backend, error) { return Backend{}, nil },
	})
}
