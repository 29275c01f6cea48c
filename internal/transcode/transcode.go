// Package transcode applies a compression codec to files and directory
// trees, mirroring relative paths between a source and a destination root.
package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/treepress/treepress/internal/codec"
	"github.com/treepress/treepress/internal/stats"
)

// DefaultSuffix is the marker suffix appended to compressed files.
// Decompression only processes files carrying it.
const DefaultSuffix = ".compressed"

// Sentinel errors for well-defined failure conditions.
var (
	// ErrSourceNotFound indicates the source path does not exist or is
	// not readable.
	ErrSourceNotFound = errors.New("transcode: source not found")

	// ErrCodecFailure indicates the input is not valid compressed data
	// for the chosen algorithm.
	ErrCodecFailure = errors.New("transcode: invalid compressed data")

	// ErrWriteFailure indicates the destination could not be written.
	ErrWriteFailure = errors.New("transcode: writing destination failed")
)

// Mode selects the direction of a transcoding operation.
type Mode int

const (
	// ModeCompress encodes source bytes with the codec.
	ModeCompress Mode = iota
	// ModeDecompress decodes source bytes with the codec.
	ModeDecompress
)

// String returns the mode name for logging.
func (m Mode) String() string {
	switch m {
	case ModeCompress:
		return "compress"
	case ModeDecompress:
		return "decompress"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Config holds configuration for a Transcoder.
type Config struct {
	// Algorithm selects the compression codec. Required.
	Algorithm codec.Algorithm

	// Suffix is the marker suffix for compressed files.
	// Defaults to DefaultSuffix.
	Suffix string

	// Logger receives one info record per file and per tree.
	// Defaults to a no-op logger.
	Logger *zap.Logger

	// Stats receives transcoding metrics.
	// Defaults to a no-op collector.
	Stats stats.Collector

	// Progress, if set, is called after every file visited during a
	// tree walk.
	Progress ProgressFunc
}

// Transcoder applies one codec to files and directory trees.
// A Transcoder is safe for concurrent use by multiple goroutines.
type Transcoder struct {
	algorithm codec.Algorithm
	codec     codec.Codec
	suffix    string
	logger    *zap.Logger
	stats     stats.Collector
	progress  ProgressFunc
}

// New creates a Transcoder for the configured algorithm.
// Returns codec.ErrUnsupportedAlgorithm before any file I/O when the
// algorithm is not in the supported set.
func New(cfg Config) (*Transcoder, error) {
	c, err := codec.For(cfg.Algorithm)
	if err != nil {
		return nil, err
	}

	t := &Transcoder{
		algorithm: cfg.Algorithm,
		codec:     c,
		suffix:    cfg.Suffix,
		logger:    cfg.Logger,
		stats:     cfg.Stats,
		progress:  cfg.Progress,
	}
	if t.suffix == "" {
		t.suffix = DefaultSuffix
	}
	if t.logger == nil {
		t.logger = zap.NewNop()
	}
	if t.stats == nil {
		t.stats = stats.NewNoop()
	}

	return t, nil
}

// Suffix returns the marker suffix for compressed files.
func (t *Transcoder) Suffix() string {
	return t.suffix
}

// File transcodes a single file: the full source contents are read into
// memory, encoded or decoded, and written to dstPath, overwriting any
// existing file there. The write is atomic (temp file plus rename), so a
// failure leaves no partial destination behind.
func (t *Transcoder) File(ctx context.Context, srcPath, dstPath string, mode Mode) error {
	_, _, err := t.file(ctx, srcPath, dstPath, mode)
	return err
}

// file transcodes a single file and reports source and destination sizes.
func (t *Transcoder) file(ctx context.Context, srcPath, dstPath string, mode Mode) (bytesRead, bytesWritten int, err error) {
	// Check for cancellation before starting I/O.
	select {
	case <-ctx.Done():
		return 0, 0, ctx.Err()
	default:
	}

	start := time.Now()

	data, err := os.ReadFile(srcPath)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}

	var out []byte
	switch mode {
	case ModeCompress:
		out, err = t.encode(data)
	case ModeDecompress:
		out, err = t.decode(data)
	default:
		return 0, 0, fmt.Errorf("unknown mode: %s", mode)
	}
	if err != nil {
		return 0, 0, err
	}

	if err := writeFileAtomic(dstPath, out); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrWriteFailure, err)
	}

	t.recordFile(mode, len(data), len(out), time.Since(start))
	t.logger.Info("file transcoded",
		zap.String("mode", mode.String()),
		zap.String("source", srcPath),
		zap.String("destination", dstPath),
		zap.String("algorithm", t.algorithm.String()),
	)

	return len(data), len(out), nil
}

// encode compresses data with the configured codec.
func (t *Transcoder) encode(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := t.codec.Writer(&buf)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecFailure, err)
	}
	if _, err := w.Write(data); err != nil {
		w.Close()
		return nil, fmt.Errorf("%w: %v", ErrCodecFailure, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecFailure, err)
	}
	return buf.Bytes(), nil
}

// decode decompresses data with the configured codec.
func (t *Transcoder) decode(data []byte) ([]byte, error) {
	r, err := t.codec.Reader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecFailure, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCodecFailure, err)
	}
	return out, nil
}

// recordFile updates the stats collector after a successful transcode.
func (t *Transcoder) recordFile(mode Mode, bytesRead, bytesWritten int, elapsed time.Duration) {
	switch mode {
	case ModeCompress:
		t.stats.IncCounter(stats.MetricFilesCompressed, 1)
	case ModeDecompress:
		t.stats.IncCounter(stats.MetricFilesDecompressed, 1)
	}
	t.stats.IncCounter(stats.MetricBytesRead, int64(bytesRead))
	t.stats.IncCounter(stats.MetricBytesWritten, int64(bytesWritten))
	t.stats.ObserveHistogram(stats.MetricFileSeconds, elapsed.Seconds())
}

// writeFileAtomic writes data to path via a temp file in the same
// directory followed by a rename. The parent directory is created if
// missing.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".treepress-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// CreateTemp files are 0600; destinations get regular file perms.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}

	return nil
}
