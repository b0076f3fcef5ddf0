package zstdstream

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
)

// CompressFile compresses srcPath into dstPath, creating or truncating the
// output. Both handles are closed on every exit path.
func CompressFile(dstPath, srcPath string, opts ...COption) (err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer func() {
		err = multierr.Append(err, src.Close())
	}()

	dst, err := os.OpenFile(dstPath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer func() {
		err = multierr.Append(err, dst.Close())
	}()

	return Compress(dst, src, opts...)
}

// DecompressFile decompresses srcPath into dstPath, creating or truncating
// the output. Both handles are closed on every exit path.
func DecompressFile(dstPath, srcPath string, opts ...DOption) (err error) {
	src, err := os.Open(srcPath)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer func() {
		err = multierr.Append(err, src.Close())
	}()

	dst, err := os.OpenFile(dstPath, os.O_TRUNC|os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output: %w", err)
	}
	defer func() {
		err = multierr.Append(err, dst.Close())
	}()

	return Decompress(dst, src, opts...)
}
