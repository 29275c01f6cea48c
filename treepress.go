// Package treepress compresses and decompresses files and whole
// directory trees using one of a fixed set of interchangeable
// algorithms.
//
// Example usage:
//
//	arch, err := treepress.New(
//	    treepress.WithAlgorithm(treepress.Zstd),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer arch.Close()
//
//	if _, err := arch.CompressTree(ctx, "./photos", "./photos.out"); err != nil {
//	    log.Fatal(err)
//	}
package treepress

import (
	"context"
	"errors"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/treepress/treepress/internal/codec"
	"github.com/treepress/treepress/internal/transcode"
)

// Sentinel errors for well-defined error conditions.
var (
	// ErrUnsupportedAlgorithm indicates an algorithm outside the
	// supported set.
	ErrUnsupportedAlgorithm = codec.ErrUnsupportedAlgorithm

	// ErrSourceNotFound indicates the source path does not exist or is
	// not readable.
	ErrSourceNotFound = transcode.ErrSourceNotFound

	// ErrCodecFailure indicates input that is not valid compressed data
	// for the chosen algorithm.
	ErrCodecFailure = transcode.ErrCodecFailure

	// ErrWriteFailure indicates the destination could not be written.
	ErrWriteFailure = transcode.ErrWriteFailure

	// ErrClosed indicates the archiver has been closed.
	ErrClosed = errors.New("treepress: archiver closed")
)

// Algorithm identifies a supported compression algorithm.
type Algorithm = codec.Algorithm

// The supported algorithms. Gzip is the default.
const (
	Gzip = codec.Gzip
	Zlib = codec.Zlib
	Zstd = codec.Zstd
	LZ4  = codec.LZ4
)

// DefaultSuffix is the marker suffix appended to compressed files.
const DefaultSuffix = transcode.DefaultSuffix

// ParseAlgorithm parses a string into an Algorithm.
// Returns ErrUnsupportedAlgorithm for unrecognized names.
func ParseAlgorithm(s string) (Algorithm, error) {
	return codec.Parse(s)
}

// Algorithms returns all supported algorithms in their canonical order.
func Algorithms() []Algorithm {
	return codec.Algorithms()
}

// TreeResult summarizes a tree operation.
type TreeResult = transcode.TreeResult

// Progress tracks tree operation progress.
type Progress = transcode.Progress

// ProgressFunc is called after every file visited during a tree
// operation.
type ProgressFunc = transcode.ProgressFunc

// Archiver compresses and decompresses files and directory trees.
// An Archiver is safe for concurrent use by multiple goroutines.
type Archiver struct {
	transcoder *transcode.Transcoder
	algorithm  Algorithm
	logger     *zap.Logger
	closed     atomic.Bool
}

// New creates a new Archiver with the given options.
// If no options are provided, sensible defaults are used.
func New(opts ...Option) (*Archiver, error) {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt.apply(&cfg)
	}

	transcoder, err := transcode.New(transcode.Config{
		Algorithm: cfg.algorithm,
		Suffix:    cfg.suffix,
		Logger:    cfg.logger,
		Stats:     cfg.stats,
		Progress:  cfg.progress,
	})
	if err != nil {
		return nil, err
	}

	a := &Archiver{
		transcoder: transcoder,
		algorithm:  cfg.algorithm,
		logger:     cfg.logger,
	}

	a.logger.Debug("archiver initialized",
		zap.String("algorithm", a.algorithm.String()),
		zap.String("suffix", transcoder.Suffix()),
	)

	return a, nil
}

// Algorithm returns the configured algorithm.
func (a *Archiver) Algorithm() Algorithm {
	return a.algorithm
}

// Suffix returns the marker suffix for compressed files.
func (a *Archiver) Suffix() string {
	return a.transcoder.Suffix()
}

// CompressFile compresses a single file into dstPath, overwriting any
// existing file there.
func (a *Archiver) CompressFile(ctx context.Context, srcPath, dstPath string) error {
	if a.closed.Load() {
		return ErrClosed
	}
	return a.transcoder.File(ctx, srcPath, dstPath, transcode.ModeCompress)
}

// DecompressFile decompresses a single file into dstPath, overwriting
// any existing file there. Returns ErrCodecFailure if the source is not
// valid compressed data for the configured algorithm.
func (a *Archiver) DecompressFile(ctx context.Context, srcPath, dstPath string) error {
	if a.closed.Load() {
		return ErrClosed
	}
	return a.transcoder.File(ctx, srcPath, dstPath, transcode.ModeDecompress)
}

// CompressTree compresses every regular file under srcRoot into a
// mirrored tree under dstRoot, appending the marker suffix to each
// filename. Per-file failures do not stop the walk; they are combined
// into the returned error.
func (a *Archiver) CompressTree(ctx context.Context, srcRoot, dstRoot string) (TreeResult, error) {
	if a.closed.Load() {
		return TreeResult{}, ErrClosed
	}
	return a.transcoder.Tree(ctx, srcRoot, dstRoot, transcode.ModeCompress)
}

// DecompressTree decompresses every file under srcRoot carrying the
// marker suffix into a mirrored tree under dstRoot with the suffix
// stripped. Files without the suffix are skipped silently. Per-file
// failures do not stop the walk; they are combined into the returned
// error.
func (a *Archiver) DecompressTree(ctx context.Context, srcRoot, dstRoot string) (TreeResult, error) {
	if a.closed.Load() {
		return TreeResult{}, ErrClosed
	}
	return a.transcoder.Tree(ctx, srcRoot, dstRoot, transcode.ModeDecompress)
}

// Close marks the archiver closed. After Close, the archiver should not
// be used.
func (a *Archiver) Close() error {
	if !a.closed.CompareAndSwap(false, true) {
		return ErrClosed
	}
	return nil
}
