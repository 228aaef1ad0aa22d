package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseLine decodes one wire line of the form "[<x>,<y>,<z>]" into a vector.
// Surrounding whitespace is tolerated. Anything else yields an error wrapping
// ErrMalformedLine; the device emits no other well-formed content.
func ParseLine(line string) (Vec3, error) {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < 2 || trimmed[0] != '[' || trimmed[len(trimmed)-1] != ']' {
		return Vec3{}, fmt.Errorf("%w: missing brackets in %q", ErrMalformedLine, line)
	}

	fields := strings.Split(trimmed[1:len(trimmed)-1], ",")
	if len(fields) != 3 {
		return Vec3{}, fmt.Errorf("%w: want 3 values, got %d", ErrMalformedLine, len(fields))
	}

	var components [3]float64
	for i, field := range fields {
		value, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if err != nil {
			return Vec3{}, fmt.Errorf("%w: %s", ErrMalformedLine, err.Error())
		}
		components[i] = value
	}

	return Vec3{X: components[0], Y: components[1], Z: components[2]}, nil
}
