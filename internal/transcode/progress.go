package transcode

// Progress tracks tree walk progress.
type Progress struct {
	FilesProcessed int
	FilesSkipped   int
	FilesFailed    int
	BytesRead      int64
	BytesWritten   int64
}

// ProgressFunc is called after every file visited during a tree walk.
type ProgressFunc func(Progress)
