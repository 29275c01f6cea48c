package codec

import (
	"fmt"

	"github.com/treepress/treepress/internal/codec/gzipcodec"
	"github.com/treepress/treepress/internal/codec/lz4codec"
	"github.com/treepress/treepress/internal/codec/zlibcodec"
	"github.com/treepress/treepress/internal/codec/zstdcodec"
)

// Compile-time checks that every registered codec implements Codec.
var (
	_ Codec = (*gzipcodec.Codec)(nil)
	_ Codec = (*zlibcodec.Codec)(nil)
	_ Codec = (*zstdcodec.Codec)(nil)
	_ Codec = (*lz4codec.Codec)(nil)
)

// For returns the codec for the given algorithm.
// Returns ErrUnsupportedAlgorithm for values outside the supported set.
func For(a Algorithm) (Codec, error) {
	switch a {
	case Gzip:
		return gzipcodec.New(), nil
	case Zlib:
		return zlibcodec.New(), nil
	case Zstd:
		return zstdcodec.New(), nil
	case LZ4:
		return lz4codec.New(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, a)
	}
}
