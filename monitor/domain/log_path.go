package domain

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// LogPath is a validated file system path for the reading log.
type LogPath string

// NewLogPath validates and cleans the given path.
func NewLogPath(path string) (LogPath, error) {
	if len(path) == 0 {
		return "", errors.New("log path cannot be empty")
	}

	cleanPath := filepath.Clean(path)
	if strings.ContainsAny(cleanPath, "<>:\"|?*") {
		return "", fmt.Errorf("log path contains invalid characters: %s", cleanPath)
	}

	return LogPath(cleanPath), nil
}
