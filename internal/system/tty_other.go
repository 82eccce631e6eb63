//go:build !linux

package system

import "github.com/rook-computer/clockface/internal/logger"

// EnterGraphics is a no-op off Linux; there is no VT to take over.
func EnterGraphics(log logger.Logger) (restore func()) {
	log.Debugf("tty", "console modes unsupported on this platform")
	return func() {}
}
