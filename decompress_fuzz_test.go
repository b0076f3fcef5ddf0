//go:build go1.18
// +build go1.18

package zstdstream

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func FuzzDecompress(f *testing.F) {
	frame, err := CompressBuffer([]byte("seed payload"), WithLevel(3))
	assert.NoError(f, err)

	f.Add(frame)
	f.Add(frame[:len(frame)-1])
	f.Add([]byte("garbage"))
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, in []byte) {
		// Must never panic; errors are fine.
		_, _ = DecompressBuffer(in)
	})
}

func FuzzRoundTrip(f *testing.F) {
	f.Add([]byte("hello world"), 3)
	f.Add([]byte{}, 1)
	f.Add([]byte{0x00}, 22)

	f.Fuzz(func(t *testing.T, payload []byte, level int) {
		frame, err := CompressBuffer(payload, WithLevel(level))
		if level < MinLevel || level > MaxLevel {
			require.ErrorIs(t, err, ErrCompressionLevel)
			return
		}
		require.NoError(t, err)

		out, err := DecompressBuffer(frame)
		require.NoError(t, err)
		require.Equal(t, len(payload), len(out))
		if len(payload) > 0 {
			require.Equal(t, payload, out)
		}
	})
}
