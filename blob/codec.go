package blob

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// PrefixSize is the width of the little-endian uncompressed size prefix
// written before every compressed payload.
const PrefixSize = 4

// Codec is a size-prefixed compression format.
type Codec interface {
	// Name returns the codec name, as accepted by CodecByName.
	Name() string
	// Ext returns the file extension (including the dot) used for encoded
	// data.
	Ext() string
	// Encode compresses src, prefixing the uncompressed size.
	Encode(src []byte) ([]byte, error)
	// Decode decompresses a size-prefixed payload.
	Decode(src []byte) ([]byte, error)
}

var (
	// LZ4 is the lz4 block codec.
	LZ4 Codec = lz4Codec{}

	// Zstd is the zstandard codec.
	Zstd Codec = zstdCodec{}
)

// CodecByName returns the codec registered as name.
func CodecByName(name string) (Codec, error) {
	for _, c := range []Codec{LZ4, Zstd} {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("unknown codec %q", name)
}

// ErrCorrupt is returned when a payload does not decode to its declared size.
var ErrCorrupt = errors.New("corrupt compressed blob")

// prefix returns a buffer holding the little-endian size n followed by
// capacity for c more bytes.
func prefix(n, c int) []byte {
	buf := make([]byte, PrefixSize, PrefixSize+c)
	binary.LittleEndian.PutUint32(buf, uint32(n))
	return buf
}

// split separates the size prefix from the payload.
func split(src []byte) (int, []byte, error) {
	if len(src) < PrefixSize {
		return 0, nil, fmt.Errorf("%w: missing size prefix", ErrCorrupt)
	}
	return int(binary.LittleEndian.Uint32(src)), src[PrefixSize:], nil
}

type lz4Codec struct{}

func (lz4Codec) Name() string { return "lz4" }
func (lz4Codec) Ext() string  { return ".lz4" }

func (lz4Codec) Encode(src []byte) ([]byte, error) {
	buf := prefix(len(src), lz4.CompressBlockBound(len(src)))
	if len(src) == 0 {
		return buf, nil
	}
	var c lz4.Compressor
	n, err := c.CompressBlock(src, buf[PrefixSize:cap(buf)])
	if err != nil {
		return nil, fmt.Errorf("lz4: %w", err)
	}
	return buf[:PrefixSize+n], nil
}

func (lz4Codec) Decode(src []byte) ([]byte, error) {
	size, payload, err := split(src)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, size)
	if size == 0 {
		return buf, nil
	}
	n, err := lz4.UncompressBlock(payload, buf)
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: lz4: %v", ErrCorrupt, err)
	case n != size:
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCorrupt, size, n)
	}
	return buf, nil
}

type zstdCodec struct{}

func (zstdCodec) Name() string { return "zstd" }
func (zstdCodec) Ext() string  { return ".zst" }

func (zstdCodec) Encode(src []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil, zstd.WithEncoderConcurrency(1), zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	defer enc.Close()
	return enc.EncodeAll(src, prefix(len(src), len(src)/2)), nil
}

func (zstdCodec) Decode(src []byte) ([]byte, error) {
	size, payload, err := split(src)
	if err != nil {
		return nil, err
	}
	if size == 0 {
		return []byte{}, nil
	}
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("zstd: %w", err)
	}
	defer dec.Close()
	buf, err := dec.DecodeAll(payload, make([]byte, 0, size))
	switch {
	case err != nil:
		return nil, fmt.Errorf("%w: zstd: %v", ErrCorrupt, err)
	case len(buf) != size:
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrCorrupt, size, len(buf))
	}
	return buf, nil
}
