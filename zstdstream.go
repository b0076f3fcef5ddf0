// Package zstdstream compresses and decompresses arbitrary byte streams as
// zstd frames using fixed-size staging buffers, so memory usage stays bounded
// regardless of stream length.
//
// Each operation comes in three flavors: stream (io.Reader to io.Writer),
// in-memory buffer, and file path. Every compressed frame carries a content
// checksum which is always verified on decompression. Compressed input that
// ends before the final frame is complete fails with ErrTruncated rather
// than silently succeeding.
//
// Calls are independent: each one owns its own codec state and buffers, so
// distinct calls may run concurrently on distinct goroutines.
package zstdstream

const (
	// MinLevel and MaxLevel bound the compression levels accepted by
	// Compress. Levels outside this range fail with ErrCompressionLevel.
	MinLevel = 1
	MaxLevel = 22

	// DefaultLevel trades speed against ratio the same way the zstd CLI does.
	DefaultLevel = 3
)

// Staging buffer capacities, one 128 KiB zstd block per step.
const (
	compressInSize    = 128 << 10
	compressOutSize   = 128 << 10
	decompressInSize  = 128 << 10
	decompressOutSize = 128 << 10
)
