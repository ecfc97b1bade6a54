// Package blob holds a packed icon blob and materializes it on first use.
//
// Generated icon packages embed either the raw blob or a size-prefixed
// compressed form of it, and wrap the embedded bytes with Raw or New. The
// compressed form is decoded exactly once, by whichever caller first asks for
// the data; concurrent callers wait for that decode and all observe the same
// buffer.
package blob

import (
	"fmt"
	"sync"
)

// Blob is a lazily materialized, read-only byte buffer.
type Blob struct {
	load func() ([]byte, error)
}

// New creates a blob that decodes src with c on first access.
func New(c Codec, src []byte) *Blob {
	return &Blob{
		load: sync.OnceValues(func() ([]byte, error) {
			buf, err := c.Decode(src)
			if err != nil {
				return nil, fmt.Errorf("could not decode %s blob: %w", c.Name(), err)
			}
			return buf, nil
		}),
	}
}

// Raw creates a blob over buf, which is used as is.
func Raw(buf []byte) *Blob {
	return &Blob{
		load: func() ([]byte, error) {
			return buf, nil
		},
	}
}

// Load returns the materialized buffer, decoding it if this is the first
// access.
func (b *Blob) Load() ([]byte, error) {
	return b.load()
}

// Bytes returns the materialized buffer. It panics if the embedded data
// cannot be decoded, as that indicates a broken build.
func (b *Blob) Bytes() []byte {
	buf, err := b.load()
	if err != nil {
		panic(err)
	}
	return buf
}

// Slice returns the n bytes at offset. The returned slice shares the blob's
// memory and must not be modified.
func (b *Blob) Slice(offset, n uint32) []byte {
	end := uint64(offset) + uint64(n)
	return b.Bytes()[offset:end:end]
}
