package domain

import "errors"

// DevicePath names the serial device the streamer writes to.
type DevicePath string

// NewDevicePath validates the given string and returns it as a DevicePath.
func NewDevicePath(path string) (DevicePath, error) {
	if path == "" {
		return "", errors.New("serial device path cannot be empty")
	}
	return DevicePath(path), nil
}
