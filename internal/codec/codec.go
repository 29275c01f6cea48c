// Package codec provides compression and decompression for file contents.
package codec

import (
	"errors"
	"fmt"
	"io"
)

// ErrUnsupportedAlgorithm is returned when an algorithm is not in the
// supported set.
var ErrUnsupportedAlgorithm = errors.New("codec: unsupported algorithm")

// Codec provides compression and decompression functionality.
type Codec interface {
	// Reader wraps r to decompress data read from it.
	Reader(r io.Reader) (io.ReadCloser, error)
	// Writer wraps w to compress data written to it.
	Writer(w io.Writer) (io.WriteCloser, error)
	// Extension returns the file extension without dot (e.g., "gz", "lz4").
	Extension() string
}

// Algorithm identifies a supported compression algorithm.
type Algorithm string

const (
	// Gzip uses DEFLATE with the gzip container format. The default.
	Gzip Algorithm = "gzip"
	// Zlib uses DEFLATE with the zlib container format.
	Zlib Algorithm = "zlib"
	// Zstd uses the Zstandard algorithm.
	Zstd Algorithm = "zstd"
	// LZ4 uses the LZ4 frame format.
	LZ4 Algorithm = "lz4"
)

// Default is the algorithm used when none is specified.
const Default = Gzip

// Algorithms returns all supported algorithms in their canonical order.
func Algorithms() []Algorithm {
	return []Algorithm{Gzip, Zlib, Zstd, LZ4}
}

// String returns the string representation of the algorithm.
func (a Algorithm) String() string {
	return string(a)
}

// IsValid reports whether the algorithm is in the supported set.
func (a Algorithm) IsValid() bool {
	switch a {
	case Gzip, Zlib, Zstd, LZ4:
		return true
	default:
		return false
	}
}

// Parse parses a string into an Algorithm.
// Returns ErrUnsupportedAlgorithm for unrecognized names.
func Parse(s string) (Algorithm, error) {
	a := Algorithm(s)
	if !a.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, s)
	}
	return a, nil
}
