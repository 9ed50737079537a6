// Package parcel converts in-memory values to bytes and back through one
// uniform contract, delegating the actual encoding to interchangeable
// backends. The built-in binary backend is always available; named backends
// such as JSON or XML are enabled by importing their package under backends/
// for side effects, in the manner of database/sql drivers:
//
//	import _ "github.com/RobertWHurst/parcel/backends/json"
//
//	s := parcel.NewWithBackend("json")
//	data, err := s.Serialize(map[string]any{"greeting": "hello"})
//	v, err := s.Deserialize(data)
//
// Backends with representational gaps (JSON's object-only top level, XML's
// inability to express an absent value) normalize values at the boundary
// with reserved-key wrappers; see Wrap and WrapAbsent. Round-tripping is
// guaranteed per backend, not across backends.
package parcel

import (
	"sync"

	"github.com/cockroachdb/errors"
)

type encodeFunc func(v any) ([]byte, error)

type decodeFunc func(data []byte) (any, error)

// Serializer converts values to bytes and back using a configured backend.
//
// A Serializer resolves its backend once, on the first call to Serialize or
// Deserialize, and keeps the resolved codec for its lifetime. Configure it
// with the Set methods before first use; changing the backend afterward has
// no effect. Resolution is guarded, so first use from multiple goroutines is
// safe.
type Serializer struct {
	backendName string
	silent      bool
	compressor  Compressor

	resolveOnce sync.Once
	encode      encodeFunc
	decode      decodeFunc
	resolveErr  error
}

// New creates a Serializer that uses the built-in binary backend.
func New() *Serializer {
	return &Serializer{backendName: DefaultBackend}
}

// NewWithBackend creates a Serializer bound to the named backend. The name
// must be DefaultBackend or one registered by an imported backend package;
// an unknown name surfaces as ErrUnknownBackend on first use.
func NewWithBackend(name string) *Serializer {
	return &Serializer{backendName: name}
}

// SetBackend selects the backend by name. It must be called before the first
// Serialize or Deserialize; once the codec is resolved the setting is
// ignored.
func (s *Serializer) SetBackend(name string) {
	s.backendName = name
}

// SetSilentFailures controls how encode and decode failures are reported.
// When enabled, a failed operation returns a nil result and a nil error, so
// a failure is indistinguishable from successfully round-tripping nil.
// Configuration errors, an unknown backend name or a backend that cannot be
// constructed, are returned regardless of this setting.
func (s *Serializer) SetSilentFailures(on bool) {
	s.silent = on
}

// SetCompressor enables transparent compression of the encoded bytes. A nil
// compressor (the default) disables it. The deserializing side must use a
// compatible compressor.
func (s *Serializer) SetCompressor(c Compressor) {
	s.compressor = c
}

// Serialize encodes v with the configured backend and returns the encoded
// bytes. The first call resolves the backend; resolution failures are
// configuration errors and are always returned. Encode and compression
// failures follow the silent-failures setting.
func (s *Serializer) Serialize(v any) ([]byte, error) {
	if err := s.resolve(); err != nil {
		return nil, err
	}
	data, err := s.encode(v)
	if err == nil && s.compressor != nil {
		data, err = s.compressor.Compress(data)
	}
	if err != nil {
		if s.silent {
			return nil, nil
		}
		return nil, errors.Mark(errors.Wrapf(err, "parcel: serialize with backend %q", s.backendName), ErrSerialize)
	}
	return data, nil
}

// Deserialize decodes data with the configured backend and returns the
// decoded value. Empty input decodes to nil without invoking the backend,
// so deserializing "nothing" never fails. Decode and decompression failures
// follow the silent-failures setting; resolution failures are always
// returned.
func (s *Serializer) Deserialize(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if err := s.resolve(); err != nil {
		return nil, err
	}
	if s.compressor != nil {
		plain, err := s.compressor.Decompress(data)
		if err != nil {
			if s.silent {
				return nil, nil
			}
			return nil, errors.Mark(errors.Wrapf(err, "parcel: deserialize with backend %q", s.backendName), ErrDeserialize)
		}
		data = plain
	}
	v, err := s.decode(data)
	if err != nil {
		if s.silent {
			return nil, nil
		}
		return nil, errors.Mark(errors.Wrapf(err, "parcel: deserialize with backend %q", s.backendName), ErrDeserialize)
	}
	return v, nil
}

// resolve materializes the encode and decode functions for the configured
// backend. It runs once per Serializer; the outcome, including an error, is
// cached for the instance's lifetime.
func (s *Serializer) resolve() error {
	s.resolveOnce.Do(func() {
		if s.backendName == "" || s.backendName == DefaultBackend {
			b := binaryBackend{}
			s.encode = b.Encode
			s.decode = b.Decode
			return
		}

		reg, ok := lookup(s.backendName)
		if !ok {
			s.resolveErr = errors.Mark(
				errors.Newf("parcel: no backend registered as %q (is its package imported?)", s.backendName),
				ErrUnknownBackend)
			return
		}

		backend, err := reg.New()
		if err == nil && backend == nil {
			err = errors.New("factory returned nil backend")
		}
		if err != nil {
			s.resolveErr = errors.Mark(
				errors.Wrapf(err, "parcel: constructing backend %q", reg.Name),
				ErrBackend)
			return
		}

		wrap, unwrap := reg.Wrap, reg.Unwrap
		s.encode = func(v any) ([]byte, error) {
			if wrap != nil {
				v = wrap(v)
			}
			return backend.Encode(v)
		}
		s.decode = func(data []byte) (any, error) {
			v, err := backend.Decode(data)
			if err != nil {
				return nil, err
			}
			if unwrap != nil {
				v = unwrap(v)
			}
			return v, nil
		}
	})
	return s.resolveErr
}
