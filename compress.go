package parcel

import "github.com/klauspost/compress/zstd"

// Compressor transparently compresses encoded bytes on their way out of
// Serialize and decompresses them on entry to Deserialize. Implementations
// must be symmetric: Decompress(Compress(b)) == b.
type Compressor interface {
	Compress(src []byte) ([]byte, error)
	Decompress(src []byte) ([]byte, error)
}

// NopCompressor passes data through unchanged. It lets callers disable
// compression through configuration without changing call sites.
type NopCompressor struct{}

var _ Compressor = NopCompressor{}

func (NopCompressor) Compress(src []byte) ([]byte, error) { return src, nil }

func (NopCompressor) Decompress(src []byte) ([]byte, error) { return src, nil }

// ZstdCompressor compresses with zstd. It holds its own encoder and decoder
// instances rather than sharing globals; Close releases them, and a closed
// compressor returns zstd's closed-state errors.
type ZstdCompressor struct {
	enc *zstd.Encoder
	dec *zstd.Decoder
}

var _ Compressor = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a ZstdCompressor with default settings.
func NewZstdCompressor() (*ZstdCompressor, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithZeroFrames(true))
	if err != nil {
		return nil, err
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		enc.Close()
		return nil, err
	}
	return &ZstdCompressor{enc: enc, dec: dec}, nil
}

func (c *ZstdCompressor) Compress(src []byte) ([]byte, error) {
	if c.enc == nil {
		return nil, zstd.ErrEncoderClosed
	}
	return c.enc.EncodeAll(src, nil), nil
}

func (c *ZstdCompressor) Decompress(src []byte) ([]byte, error) {
	if c.dec == nil {
		return nil, zstd.ErrDecoderClosed
	}
	return c.dec.DecodeAll(src, nil)
}

// Close releases the underlying encoder and decoder. The compressor must
// not be used after Close.
func (c *ZstdCompressor) Close() {
	if c.enc != nil {
		_ = c.enc.Close()
		c.enc = nil
	}
	if c.dec != nil {
		c.dec.Close()
		c.dec = nil
	}
}
