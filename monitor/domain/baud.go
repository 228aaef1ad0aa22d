package domain

import "errors"

// BaudRate is the rate the serial input is read at. It must match the streamer's
// transport rate; the wire format is not self-describing.
type BaudRate int

// NewBaudRate validates the given value and returns it as a BaudRate.
func NewBaudRate(baud int) (BaudRate, error) {
	if baud <= 0 {
		return 0, errors.New("baud rate must be greater than 0")
	}
	return BaudRate(baud), nil
}
