package infrastructure

import (
	"context"
	"io"
	"sync"

	streamerDomain "github.com/okorenko/tiltstream/streamer/domain"
)

// WriterTransport emits lines on any io.Writer. It backs the "-device -" mode,
// where the sample stream goes to stdout instead of a serial port.
type WriterTransport struct {
	w   io.Writer
	mu  sync.Mutex
	buf []byte
}

// Send writes one line followed by a newline.
func (t *WriterTransport) Send(ctx context.Context, line []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf[:0], line...)
	t.buf = append(t.buf, '\n')
	_, err := t.w.Write(t.buf)
	return err
}

// NewWriterTransport creates a transport writing to w.
func NewWriterTransport(w io.Writer) *WriterTransport {
	return &WriterTransport{w: w}
}

// compile-time check that both transports satisfy the domain contract
var (
	_ streamerDomain.Transport = (*WriterTransport)(nil)
	_ streamerDomain.Transport = (*SerialTransport)(nil)
)
