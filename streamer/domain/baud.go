package domain

import "errors"

// BaudRate is the fixed rate the output transport is configured with.
type BaudRate int

// NewBaudRate validates the given value and returns it as a BaudRate.
// It returns an error if the value is not positive.
func NewBaudRate(baud int) (BaudRate, error) {
	if baud <= 0 {
		return 0, errors.New("baud rate must be greater than 0")
	}
	return BaudRate(baud), nil
}
