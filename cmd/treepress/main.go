// Package main provides the treepress CLI tool for compressing and
// decompressing files or directory trees and moving the results to and
// from cloud object storage.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
