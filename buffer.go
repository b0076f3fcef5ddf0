package zstdstream

import (
	"fmt"
	"io"
)

// inBuffer is a fixed-capacity staging area for source bytes. pos is the
// consumption cursor and size the number of valid bytes, with
// 0 <= pos <= size <= cap(data). The buffer is refilled only once fully
// drained, never reallocated.
type inBuffer struct {
	data []byte
	size int
	pos  int
}

func newInBuffer(capacity int) *inBuffer {
	return &inBuffer{data: make([]byte, capacity)}
}

func (b *inBuffer) drained() bool {
	return b.pos == b.size
}

// refill reads up to capacity bytes from r and resets the cursor. A short
// count means r is exhausted: refill keeps reading until the buffer is full
// or EOF is hit, so anything less than a full buffer is the end of input.
func (b *inBuffer) refill(r io.Reader) (int, error) {
	n, err := io.ReadFull(r, b.data)
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		err = nil
	}
	b.pos = 0
	b.size = n
	return n, err
}

// outBuffer is a fixed-capacity staging area for produced bytes. pos is the
// number of valid bytes, 0 <= pos <= cap(data).
type outBuffer struct {
	data []byte
	pos  int
}

func newOutBuffer(capacity int) *outBuffer {
	return &outBuffer{data: make([]byte, capacity)}
}

func (b *outBuffer) reset() {
	b.pos = 0
}

// drain writes the produced bytes to w and resets the cursor.
func (b *outBuffer) drain(w io.Writer) error {
	if b.pos == 0 {
		return nil
	}
	n, err := w.Write(b.data[:b.pos])
	if err != nil {
		return err
	}
	if n != b.pos {
		return fmt.Errorf("partial write: %d out of %d", n, b.pos)
	}
	b.pos = 0
	return nil
}
