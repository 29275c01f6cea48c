package transcode

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/treepress/treepress/internal/stats"
)

// TreeResult summarizes a tree walk.
type TreeResult struct {
	// FilesProcessed is the number of files successfully transcoded.
	FilesProcessed int
	// FilesSkipped is the number of files ignored during decompression
	// because they lack the marker suffix.
	FilesSkipped int
	// FilesFailed is the number of files whose transcoding failed.
	FilesFailed int
	// BytesRead and BytesWritten total the source and destination sizes
	// of all successfully transcoded files.
	BytesRead    int64
	BytesWritten int64
}

// Tree recursively transcodes every eligible regular file under srcRoot
// into a mirrored path under dstRoot, creating destination directories
// as needed.
//
// In compress mode every regular file is processed and the marker suffix
// is appended to its name. In decompress mode only files carrying the
// suffix are processed, with the suffix stripped; all other files are
// skipped silently.
//
// Per-file failures do not stop the walk: the remaining files are still
// attempted and all errors are returned together, combined with
// multierr, alongside the counts of what was done.
func (t *Transcoder) Tree(ctx context.Context, srcRoot, dstRoot string, mode Mode) (TreeResult, error) {
	var res TreeResult

	info, err := os.Stat(srcRoot)
	if err != nil {
		return res, fmt.Errorf("%w: %v", ErrSourceNotFound, err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("%w: %s is not a directory", ErrSourceNotFound, srcRoot)
	}

	var walkErrs error
	err = filepath.WalkDir(srcRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			walkErrs = multierr.Append(walkErrs, err)
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}

		// Abort the remaining walk on cancellation.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		rel, err := filepath.Rel(srcRoot, path)
		if err != nil {
			walkErrs = multierr.Append(walkErrs, err)
			res.FilesFailed++
			return nil
		}

		var dst string
		switch mode {
		case ModeCompress:
			dst = filepath.Join(dstRoot, rel) + t.suffix
		case ModeDecompress:
			if !strings.HasSuffix(d.Name(), t.suffix) {
				res.FilesSkipped++
				t.stats.IncCounter(stats.MetricFilesSkipped, 1)
				t.reportProgress(res)
				return nil
			}
			dst = strings.TrimSuffix(filepath.Join(dstRoot, rel), t.suffix)
		default:
			return fmt.Errorf("unknown mode: %s", mode)
		}

		read, written, err := t.file(ctx, path, dst, mode)
		if err != nil {
			walkErrs = multierr.Append(walkErrs, fmt.Errorf("%s: %w", rel, err))
			res.FilesFailed++
			t.reportProgress(res)
			return nil
		}

		res.FilesProcessed++
		res.BytesRead += int64(read)
		res.BytesWritten += int64(written)
		t.reportProgress(res)
		return nil
	})
	if err != nil {
		// Only cancellation or an unknown mode abort the walk itself.
		return res, multierr.Append(walkErrs, err)
	}

	t.logger.Info("tree transcoded",
		zap.String("mode", mode.String()),
		zap.String("source", srcRoot),
		zap.String("destination", dstRoot),
		zap.String("algorithm", t.algorithm.String()),
		zap.Int("processed", res.FilesProcessed),
		zap.Int("skipped", res.FilesSkipped),
		zap.Int("failed", res.FilesFailed),
	)

	return res, walkErrs
}

// reportProgress invokes the progress callback, if any.
func (t *Transcoder) reportProgress(res TreeResult) {
	if t.progress == nil {
		return
	}
	t.progress(Progress{
		FilesProcessed: res.FilesProcessed,
		FilesSkipped:   res.FilesSkipped,
		FilesFailed:    res.FilesFailed,
		BytesRead:      res.BytesRead,
		BytesWritten:   res.BytesWritten,
	})
}
