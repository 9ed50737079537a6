package parcel

import "github.com/vmihailenco/msgpack/v5"

// DefaultBackend is the identifier of the built-in binary backend. It is
// always available and never consults the backend registry.
const DefaultBackend = "binary"

// binaryBackend is the built-in msgpack codec. It round-trips arbitrary
// values, including nil, sequences, and mappings, so no quirk normalization
// applies.
type binaryBackend struct{}

var _ Backend = binaryBackend{}

func (binaryBackend) Encode(v any) ([]byte, error) {
	return msgpack.Marshal(v)
}

func (binaryBackend) Decode(data []byte) (any, error) {
	var v any
	if err := msgpack.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
