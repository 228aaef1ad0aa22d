package infrastructure

import (
	"fmt"
	"io"

	"github.com/tarm/serial"

	monitorDomain "github.com/okorenko/tiltstream/monitor/domain"
)

// OpenSerialPort opens the device the streamer writes to, for reading.
// Closing the returned reader unblocks a scanner waiting on it.
func OpenSerialPort(device monitorDomain.DevicePath, baud monitorDomain.BaudRate) (io.ReadCloser, error) {
	port, err := serial.OpenPort(&serial.Config{Name: string(device), Baud: int(baud)})
	if err != nil {
		return nil, fmt.Errorf("error opening serial device %s: %w", device, err)
	}

	return port, nil
}
