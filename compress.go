package zstdstream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zstd"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// endDirective tells the compressor whether more input may follow the
// current chunk.
type endDirective int

const (
	directiveContinue endDirective = iota
	directiveEnd
)

// compressContext wraps a per-call zstd encoder streaming into a staging
// buffer. It is owned by exactly one Compress call and released on every
// exit path; there is no pooling or cross-call reuse.
type compressContext struct {
	enc    *zstd.Encoder
	staged bytes.Buffer
	closed bool
}

func newCompressContext(level int) (*compressContext, error) {
	c := &compressContext{}
	enc, err := zstd.NewWriter(&c.staged,
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderCRC(true),
		zstd.WithEncoderConcurrency(1),
		zstd.WithZeroFrames(true),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create compression context: %w", err)
	}
	c.enc = enc
	return c, nil
}

// advance consumes in[pos:size], finalizes the frame when mode is
// directiveEnd, and moves staged compressed bytes into out at its cursor.
// It returns the number of bytes still staged: the frame is fully flushed
// only once that reaches zero.
func (c *compressContext) advance(out *outBuffer, in *inBuffer, mode endDirective) (int, error) {
	for !in.drained() {
		n, err := c.enc.Write(in.data[in.pos:in.size])
		in.pos += n
		if err != nil {
			return 0, fmt.Errorf("compression failed: %w", err)
		}
	}

	if mode == directiveEnd && !c.closed {
		c.closed = true
		if err := c.enc.Close(); err != nil {
			return 0, fmt.Errorf("failed to finalize frame: %w", err)
		}
	}

	out.pos += copy(out.data[out.pos:], c.staged.Next(len(out.data)-out.pos))
	return c.staged.Len(), nil
}

func (c *compressContext) release() (err error) {
	if !c.closed {
		c.closed = true
		err = c.enc.Close()
	}
	return
}

// Compress reads src to exhaustion and writes a single finalized zstd frame,
// including a content checksum, to dst.
func Compress(dst io.Writer, src io.Reader, opts ...COption) (err error) {
	var o cOptions
	o.setDefault()
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return err
		}
	}

	if o.level < MinLevel || o.level > MaxLevel {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrCompressionLevel,
			o.level, MinLevel, MaxLevel)
	}

	ctx, err := newCompressContext(o.level)
	if err != nil {
		return err
	}
	defer func() {
		err = multierr.Append(err, ctx.release())
	}()

	in := newInBuffer(compressInSize)
	out := newOutBuffer(compressOutSize)

	for lastChunk := false; !lastChunk; {
		n, rerr := in.refill(src)
		if rerr != nil {
			return fmt.Errorf("failed to read source: %w", rerr)
		}
		counters.rawIn.Add(uint64(n))

		// A short read is the end-of-input signal. A source that yields
		// exactly capacity-sized chunks costs one extra empty refill before
		// termination is detected.
		lastChunk = n < len(in.data)

		mode := directiveContinue
		if lastChunk {
			mode = directiveEnd
		}

		for {
			out.reset()
			remaining, aerr := ctx.advance(out, in, mode)
			if aerr != nil {
				return aerr
			}
			o.logger.Debug("compress step",
				zap.Int("chunk", n),
				zap.Int("produced", out.pos),
				zap.Int("remaining", remaining),
				zap.Bool("last_chunk", lastChunk))

			counters.compOut.Add(uint64(out.pos))
			if werr := out.drain(dst); werr != nil {
				return fmt.Errorf("failed to write sink: %w", werr)
			}

			if in.drained() && remaining == 0 {
				break
			}
		}
	}
	return nil
}
