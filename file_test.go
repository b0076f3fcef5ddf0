package zstdstream

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawPath := filepath.Join(dir, "raw")
	compPath := filepath.Join(dir, "raw.zst")
	outPath := filepath.Join(dir, "restored")

	payload := testPayload(2*compressInSize + 12345)
	require.NoError(t, os.WriteFile(rawPath, payload, 0644))

	require.NoError(t, CompressFile(compPath, rawPath, WithLevel(5)))
	require.NoError(t, DecompressFile(outPath, compPath))

	restored, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, xxhash.Sum64(payload), xxhash.Sum64(restored))
}

func TestFileMissingInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	err := CompressFile(filepath.Join(dir, "out"), filepath.Join(dir, "does-not-exist"))
	assert.Error(t, err)
	assert.NoFileExists(t, filepath.Join(dir, "out"))
}

func TestFileOutputTruncated(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawPath := filepath.Join(dir, "raw")
	compPath := filepath.Join(dir, "raw.zst")
	outPath := filepath.Join(dir, "restored")

	payload := []byte("short")
	require.NoError(t, os.WriteFile(rawPath, payload, 0644))
	// Stale content longer than the result must not survive.
	require.NoError(t, os.WriteFile(outPath, testPayload(4096), 0644))

	require.NoError(t, CompressFile(compPath, rawPath))
	require.NoError(t, DecompressFile(outPath, compPath))

	restored, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, payload, restored)
}

func TestFileTruncatedInput(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	rawPath := filepath.Join(dir, "raw")
	compPath := filepath.Join(dir, "raw.zst")

	require.NoError(t, os.WriteFile(rawPath, []byte("payload payload payload"), 0644))
	require.NoError(t, CompressFile(compPath, rawPath))

	frame, err := os.ReadFile(compPath)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(compPath, frame[:len(frame)-1], 0644))

	err = DecompressFile(filepath.Join(dir, "restored"), compPath)
	assert.ErrorIs(t, err, ErrTruncated)
}
