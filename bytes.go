package zstdstream

import (
	"bytes"
)

// CompressBuffer compresses src in memory and returns the encoded frame.
// To compress a subrange, pass a subslice: CompressBuffer(p[start:end]).
// src is never written to.
func CompressBuffer(src []byte, opts ...COption) ([]byte, error) {
	var dst bytes.Buffer
	if err := Compress(&dst, bytes.NewReader(src), opts...); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}

// DecompressBuffer decompresses src in memory and returns the original
// bytes.
func DecompressBuffer(src []byte, opts ...DOption) ([]byte, error) {
	var dst bytes.Buffer
	if err := Decompress(&dst, bytes.NewReader(src), opts...); err != nil {
		return nil, err
	}
	return dst.Bytes(), nil
}
