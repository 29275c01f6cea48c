// Package lz4codec provides an LZ4 frame compression codec.
package lz4codec

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

// Codec implements LZ4 frame compression.
type Codec struct{}

// New returns a new LZ4 codec.
func New() *Codec {
	return &Codec{}
}

// Reader wraps r to decompress LZ4 frame data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(lz4.NewReader(r)), nil
}

// Writer wraps w to compress data in LZ4 frames.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return lz4.NewWriter(w), nil
}

// Extension returns "lz4".
func (c *Codec) Extension() string {
	return "lz4"
}
