// Package cbor provides the CBOR backend for parcel (RFC 8949).
// It registers itself under the name "cbor" when imported.
//
// Encoding uses canonical options, so equal values produce identical bytes.
// CBOR represents null, sequences, and mappings natively at the top level,
// so no quirk normalization applies.
package cbor

import (
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/RobertWHurst/parcel"
)

// Name is the identifier this backend registers under.
const Name = "cbor"

// Backend implements parcel.Backend using deterministic CBOR.
type Backend struct {
	enc cbor.EncMode
	dec cbor.DecMode
}

var _ parcel.Backend = Backend{}

// New builds a Backend with canonical encode options and a decoder that
// produces map[string]any for mappings.
func New() (parcel.Backend, error) {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		return nil, err
	}
	dm, err := cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		return nil, err
	}
	return Backend{enc: em, dec: dm}, nil
}

// Encode serializes v to canonical CBOR bytes.
func (b Backend) Encode(v any) ([]byte, error) {
	return b.enc.Marshal(v)
}

// Decode deserializes CBOR bytes into a value.
func (b Backend) Decode(data []byte) (any, error) {
	var v any
	if err := b.dec.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func init() {
	parcel.Register(parcel.Registration{
		Name: Name,
		New:  New,
	})
}
