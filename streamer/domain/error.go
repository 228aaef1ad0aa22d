package domain

import "errors"

// ErrSensorUnavailable indicates that accelerometer bring-up failed. The condition is
// terminal for the sample loop; the caller decides whether to halt or restart.
var ErrSensorUnavailable = errors.New("accelerometer is unavailable")

// ErrTransportNotReady indicates that the transport cannot accept a line right now.
var ErrTransportNotReady = errors.New("transport is not ready")
