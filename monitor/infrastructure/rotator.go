package infrastructure

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	monitorDomain "github.com/okorenko/tiltstream/monitor/domain"
)

// KScreenRotator rotates a KDE Plasma display through the kscreen-doctor tool.
type KScreenRotator struct {
	display monitorDomain.DisplayName
	logger  monitorDomain.Logger
}

// Rotate invokes kscreen-doctor to set the display orientation.
func (r *KScreenRotator) Rotate(ctx context.Context, rotation monitorDomain.Rotation) error {
	arg := fmt.Sprintf("output.%s.rotation.%s", r.display, rotation)
	output, err := exec.CommandContext(ctx, "kscreen-doctor", arg).CombinedOutput()
	if err != nil {
		return fmt.Errorf("kscreen-doctor failed: %w: %s", err, strings.TrimSpace(string(output)))
	}

	r.logger.Info("display %s rotated to %s", r.display, rotation)
	return nil
}

// NewKScreenRotator creates a rotator for the named display.
func NewKScreenRotator(display monitorDomain.DisplayName, logger monitorDomain.Logger) *KScreenRotator {
	return &KScreenRotator{
		display: display,
		logger:  logger,
	}
}
