package domain

import "time"

// Reading is one parsed acceleration measurement received from the device.
// The timestamp is assigned at receipt; the wire format carries none.
type Reading struct {
	ReceivedAt time.Time
	Acc        Vec3
}
