package infrastructure

import (
	"context"
	"fmt"
	"sync"

	"github.com/tarm/serial"

	streamerDomain "github.com/okorenko/tiltstream/streamer/domain"
)

// SerialTransport emits lines on a serial port. The port is owned exclusively by the
// transport for the remainder of the process lifetime.
type SerialTransport struct {
	port *serial.Port
	mu   sync.Mutex
	buf  []byte
}

// OpenSerialTransport opens the serial device at the given baud rate.
func OpenSerialTransport(device string, baud streamerDomain.BaudRate) (*SerialTransport, error) {
	port, err := serial.OpenPort(&serial.Config{Name: device, Baud: int(baud)})
	if err != nil {
		return nil, fmt.Errorf("error opening serial device %s: %w", device, err)
	}

	return &SerialTransport{port: port}, nil
}

// Send writes one line followed by a newline.
func (t *SerialTransport) Send(ctx context.Context, line []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.buf = append(t.buf[:0], line...)
	t.buf = append(t.buf, '\n')
	if _, err := t.port.Write(t.buf); err != nil {
		return fmt.Errorf("error writing to serial port: %w", err)
	}
	return nil
}

// Close releases the serial port.
func (t *SerialTransport) Close() error {
	return t.port.Close()
}
