// Package domain provides the core acquisition and streaming logic of the streamer.
package domain

import "strconv"

// Sample is one instantaneous 3-axis acceleration reading in g.
type Sample struct {
	X float64
	Y float64
	Z float64
}

// AppendLine appends the wire form of the sample, "[<x>,<y>,<z>]", to buf.
// Each value uses the shortest decimal representation that round-trips.
// The line terminator is owned by the transport, not the encoder.
func (s Sample) AppendLine(buf []byte) []byte {
	buf = append(buf, '[')
	buf = strconv.AppendFloat(buf, s.X, 'g', -1, 64)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, s.Y, 'g', -1, 64)
	buf = append(buf, ',')
	buf = strconv.AppendFloat(buf, s.Z, 'g', -1, 64)
	buf = append(buf, ']')
	return buf
}

// Line returns the wire form of the sample as a string.
func (s Sample) Line() string {
	return string(s.AppendLine(nil))
}
