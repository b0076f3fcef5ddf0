package zstdstream

import "errors"

var (
	// ErrCompressionLevel is returned when the requested compression level
	// lies outside [MinLevel, MaxLevel].
	ErrCompressionLevel = errors.New("compression level out of range")

	// ErrTruncated is returned when the compressed input ends before the
	// final frame is fully resolved. It is distinct from decoder errors:
	// the bytes seen so far were valid, there just weren't enough of them.
	ErrTruncated = errors.New("truncated zstd stream")
)
