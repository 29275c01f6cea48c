package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/treepress/treepress"
	statslogger "github.com/treepress/treepress/internal/stats/logger"
)

var compressCmd = &cobra.Command{
	Use:   "compress <input> <output>",
	Short: "Compress a file or directory",
	Long: `Compress a file or directory tree.

When the input is a directory, every regular file under it is compressed
into a mirrored tree under the output directory, with ".compressed"
appended to each filename.

Examples:
  # Compress a single file with the default algorithm (gzip)
  treepress compress report.pdf report.pdf.compressed

  # Compress a tree with lz4
  treepress compress ./logs ./logs.out -a lz4`,
	Args: cobra.ExactArgs(2),
	RunE: runCompress,
}

var compressAlgorithm string

func init() {
	compressCmd.Flags().StringVarP(&compressAlgorithm, "algorithm", "a", treepress.Gzip.String(),
		fmt.Sprintf("compression algorithm: %v", treepress.Algorithms()))
	rootCmd.AddCommand(compressCmd)
}

func runCompress(cmd *cobra.Command, args []string) error {
	return runTranscode(args[0], args[1], compressAlgorithm, false)
}

// runTranscode drives both the compress and decompress commands.
func runTranscode(input, output, algorithmName string, decompress bool) error {
	// Reject unknown algorithms before touching any file.
	algorithm, err := treepress.ParseAlgorithm(algorithmName)
	if err != nil {
		return err
	}

	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer logger.Sync()

	arch, err := treepress.New(
		treepress.WithAlgorithm(algorithm),
		treepress.WithLogger(logger),
		treepress.WithStats(statslogger.New(logger.Named("stats"))),
	)
	if err != nil {
		return fmt.Errorf("creating archiver: %w", err)
	}
	defer arch.Close()

	ctx := context.Background()

	info, err := os.Stat(input)
	switch {
	case err != nil:
		return fmt.Errorf("invalid input path %q: %w", input, treepress.ErrSourceNotFound)
	case info.IsDir():
		var res treepress.TreeResult
		if decompress {
			res, err = arch.DecompressTree(ctx, input, output)
		} else {
			res, err = arch.CompressTree(ctx, input, output)
		}
		if err != nil {
			logger.Error("tree operation finished with errors",
				zap.Int("processed", res.FilesProcessed),
				zap.Int("failed", res.FilesFailed),
				zap.Error(err),
			)
			return err
		}
		return nil
	case info.Mode().IsRegular():
		if decompress {
			return arch.DecompressFile(ctx, input, output)
		}
		return arch.CompressFile(ctx, input, output)
	default:
		return fmt.Errorf("invalid input path %q: neither file nor directory", input)
	}
}
