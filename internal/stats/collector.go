// Package stats provides a unified interface for collecting metrics.
package stats

// Metric names used throughout the library.
const (
	// Transcoding metrics.
	MetricFilesCompressed   = "treepress_files_compressed_total"
	MetricFilesDecompressed = "treepress_files_decompressed_total"
	MetricFilesSkipped      = "treepress_files_skipped_total"
	MetricBytesRead         = "treepress_bytes_read_total"
	MetricBytesWritten      = "treepress_bytes_written_total"
	MetricFileSeconds       = "treepress_file_seconds"

	// Transfer metrics.
	MetricUploads   = "treepress_uploads_total"
	MetricDownloads = "treepress_downloads_total"
)

// Collector defines the interface for collecting metrics.
type Collector interface {
	// IncCounter increments a counter metric by delta.
	IncCounter(name string, delta int64)

	// SetGauge sets a gauge metric to value.
	SetGauge(name string, value int64)

	// ObserveHistogram records a value in a histogram metric.
	ObserveHistogram(name string, value float64)
}
