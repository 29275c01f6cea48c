package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Global flags.
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "treepress",
	Short: "Compress files and directory trees, locally or to the cloud",
	Long: `Treepress compresses and decompresses files or whole directory trees
using one of four interchangeable algorithms (gzip, zlib, zstd, lz4),
and moves the results to and from S3 or Google Cloud Storage.

Directory compression mirrors the source tree under the destination,
appending a ".compressed" suffix to every filename. Decompression only
processes files carrying that suffix and strips it.

Examples:
  # Compress a single file
  treepress compress notes.txt notes.txt.compressed

  # Compress a whole tree with zstd
  treepress compress ./photos ./photos.out --algorithm zstd

  # Restore it
  treepress decompress ./photos.out ./photos.restored --algorithm zstd

  # Ship an archive to S3
  treepress cloud s3 upload photos.tar.compressed my-bucket backups/photos`,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// newLogger builds the CLI logger writing structured lines to stderr.
func newLogger() (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if verbose {
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return cfg.Build()
}
