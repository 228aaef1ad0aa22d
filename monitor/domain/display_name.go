package domain

import "errors"

// DisplayName is the output name kscreen-doctor uses for the display to rotate.
type DisplayName string

// NewDisplayName validates the given string and returns it as a DisplayName.
func NewDisplayName(name string) (DisplayName, error) {
	if name == "" {
		return "", errors.New("display name cannot be empty")
	}
	return DisplayName(name), nil
}
