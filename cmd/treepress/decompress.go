package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/treepress/treepress"
)

var decompressCmd = &cobra.Command{
	Use:   "decompress <input> <output>",
	Short: "Decompress a file or directory",
	Long: `Decompress a file or directory tree.

When the input is a directory, only files whose name ends in
".compressed" are processed; the suffix is stripped and everything else
is skipped. The algorithm must match the one used for compression.

Examples:
  # Decompress a single file
  treepress decompress report.pdf.compressed report.pdf

  # Restore a tree compressed with lz4
  treepress decompress ./logs.out ./logs -a lz4`,
	Args: cobra.ExactArgs(2),
	RunE: runDecompress,
}

var decompressAlgorithm string

func init() {
	decompressCmd.Flags().StringVarP(&decompressAlgorithm, "algorithm", "a", treepress.Gzip.String(),
		fmt.Sprintf("decompression algorithm: %v", treepress.Algorithms()))
	rootCmd.AddCommand(decompressCmd)
}

func runDecompress(cmd *cobra.Command, args []string) error {
	return runTranscode(args[0], args[1], decompressAlgorithm, true)
}
