package parcel

import "github.com/cockroachdb/errors"

// Configuration errors. These indicate a setup mistake detected during
// backend resolution and are always returned, regardless of the
// silent-failures setting.
var (
	ErrUnknownBackend = errors.New("parcel: unknown backend")
	ErrBackend        = errors.New("parcel: backend unavailable")
)

// Operational errors. These mark failures inside an actual encode or decode
// call and are suppressed when silent failures are enabled. The underlying
// backend error is preserved in the chain.
var (
	ErrSerialize   = errors.New("parcel: serialize failed")
	ErrDeserialize = errors.New("parcel: deserialize failed")
)
