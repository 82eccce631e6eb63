//go:build !linux

package system

import (
	"context"

	"github.com/rook-computer/clockface/internal/logger"
)

// StartExitOnF4 needs evdev; elsewhere the face exits on signals only.
func StartExitOnF4(ctx context.Context, log logger.Logger, onExit func()) {
	log.Debugf("input", "F4 exit unsupported on this platform")
}
