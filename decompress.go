package zstdstream

import (
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/zap"
)

// frameSource feeds the decoder from the bounded input buffer, refilling
// from the underlying source whenever the buffer is drained. Like the
// compression side, end of input is inferred from a short refill.
type frameSource struct {
	r   io.Reader
	buf *inBuffer

	exhausted bool
	compRead  uint64
}

var _ io.Reader = (*frameSource)(nil)

func (f *frameSource) Read(p []byte) (int, error) {
	if f.buf.drained() {
		if f.exhausted {
			return 0, io.EOF
		}
		n, err := f.buf.refill(f.r)
		if err != nil {
			return 0, err
		}
		f.compRead += uint64(n)
		if n < len(f.buf.data) {
			f.exhausted = true
		}
		if n == 0 {
			return 0, io.EOF
		}
	}

	n := copy(p, f.buf.data[f.buf.pos:f.buf.size])
	f.buf.pos += n
	return n, nil
}

// decompressContext wraps a per-call zstd decoder pulling compressed bytes
// through a frameSource. Owned by exactly one Decompress call.
type decompressContext struct {
	dec *zstd.Decoder
	src *frameSource
}

func newDecompressContext(src io.Reader) (*decompressContext, error) {
	fs := &frameSource{r: src, buf: newInBuffer(decompressInSize)}
	dec, err := zstd.NewReader(fs, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, fmt.Errorf("failed to create decompression context: %w", err)
	}
	return &decompressContext{dec: dec, src: fs}, nil
}

// advance produces decompressed bytes into out at its cursor. done reports
// a cleanly finished stream. Input ending mid-frame surfaces as
// ErrTruncated; everything else the decoder rejects is passed through with
// its own diagnostic.
func (d *decompressContext) advance(out *outBuffer) (done bool, err error) {
	n, err := d.dec.Read(out.data[out.pos:])
	out.pos += n
	if err == io.EOF {
		return true, nil
	}
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) {
			return false, fmt.Errorf("%w after %d compressed bytes",
				ErrTruncated, d.src.compRead)
		}
		return false, fmt.Errorf("decompression failed: %w", err)
	}
	return false, nil
}

func (d *decompressContext) release() {
	d.dec.Close()
}

// Decompress reads one or more concatenated zstd frames from src and writes
// the original bytes to dst, verifying content checksums. Input that ends
// before the final frame is complete fails with ErrTruncated; an empty
// source decompresses to an empty stream.
func Decompress(dst io.Writer, src io.Reader, opts ...DOption) error {
	var o dOptions
	o.setDefault()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	ctx, err := newDecompressContext(src)
	if err != nil {
		return err
	}
	defer ctx.release()

	out := newOutBuffer(decompressOutSize)
	for {
		out.reset()
		done, aerr := ctx.advance(out)
		o.logger.Debug("decompress step",
			zap.Int("produced", out.pos),
			zap.Bool("done", done))

		counters.rawOut.Add(uint64(out.pos))
		if werr := out.drain(dst); werr != nil {
			return fmt.Errorf("failed to write sink: %w", werr)
		}
		if aerr != nil {
			return aerr
		}
		if done {
			counters.compIn.Add(ctx.src.compRead)
			return nil
		}
	}
}
