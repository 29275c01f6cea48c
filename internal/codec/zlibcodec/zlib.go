// Package zlibcodec provides a zlib compression codec.
package zlibcodec

import (
	"compress/zlib"
	"io"
)

// Codec implements zlib compression.
type Codec struct{}

// New returns a new zlib codec.
func New() *Codec {
	return &Codec{}
}

// Reader wraps r to decompress zlib data.
func (c *Codec) Reader(r io.Reader) (io.ReadCloser, error) {
	return zlib.NewReader(r)
}

// Writer wraps w to compress data with zlib.
func (c *Codec) Writer(w io.Writer) (io.WriteCloser, error) {
	return zlib.NewWriter(w), nil
}

// Extension returns "zz".
func (c *Codec) Extension() string {
	return "zz"
}
