package zstdstream

import (
	"go.uber.org/atomic"
)

// Counters holds process-wide byte totals across all calls, in both
// directions.
type Counters struct {
	// RawIn is the number of uncompressed bytes read by Compress.
	RawIn uint64
	// CompOut is the number of compressed bytes written by Compress.
	CompOut uint64
	// CompIn is the number of compressed bytes read by Decompress.
	CompIn uint64
	// RawOut is the number of uncompressed bytes written by Decompress.
	RawOut uint64
}

// The only state shared between calls, hence atomics.
var counters struct {
	rawIn, compOut, compIn, rawOut atomic.Uint64
}

// Stats returns a snapshot of the package-wide byte counters. Fields are
// sampled individually and need not form a consistent cut while calls are
// in flight.
func Stats() Counters {
	return Counters{
		RawIn:   counters.rawIn.Load(),
		CompOut: counters.compOut.Load(),
		CompIn:  counters.compIn.Load(),
		RawOut:  counters.rawOut.Load(),
	}
}
