//go:build linux

// Package system holds the console and input plumbing needed when the face
// owns a Linux virtual terminal.
package system

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/clockface/internal/logger"
)

// KD console modes from linux/kd.h
const (
	kdText     = 0x00
	kdGraphics = 0x01
	kdSetMode  = 0x4B3A // KDSETMODE ioctl
)

// vtPaths are tried in order: the controlling terminal, then the active VT.
var vtPaths = []string{"/dev/tty", "/dev/tty0"}

var errNoConsole = errors.New("no console device")

// SetGraphicsMode switches the active console to KD_GRAPHICS so the kernel
// stops drawing its cursor over the framebuffer.
func SetGraphicsMode() error { return setKDMode(kdGraphics, "KD_GRAPHICS") }

// RestoreTextMode puts the console back into KD_TEXT.
func RestoreTextMode() error { return setKDMode(kdText, "KD_TEXT") }

func setKDMode(mode int, name string) error {
	lastErr := errNoConsole
	for _, p := range vtPaths {
		fd, err := unix.Open(p, unix.O_RDONLY, 0)
		if err != nil {
			lastErr = fmt.Errorf("open %s: %w", p, err)
			continue
		}
		err = unix.IoctlSetInt(fd, kdSetMode, mode)
		_ = unix.Close(fd)
		if err != nil {
			lastErr = fmt.Errorf("%s on %s: %w", name, p, err)
			continue
		}
		return nil
	}
	return lastErr
}

// HideCursor writes the ANSI escape to hide the cursor to the active VT.
func HideCursor() error { return writeVT("\x1b[?25l") }

func ShowCursor() error { return writeVT("\x1b[?25h") }

func writeVT(s string) error {
	lastErr := errNoConsole
	for _, p := range vtPaths {
		f, err := os.OpenFile(p, os.O_WRONLY, 0)
		if err != nil {
			lastErr = err
			continue
		}
		_, err = f.WriteString(s)
		_ = f.Close()
		if err == nil {
			return nil
		}
		lastErr = err
	}
	return fmt.Errorf("write VT: %w", lastErr)
}

// EnterGraphics hides the console for the lifetime of the face and returns
// the function that restores it. Failures are logged, never fatal: the face
// still draws with a blinking cursor on top.
func EnterGraphics(log logger.Logger) (restore func()) {
	if err := SetGraphicsMode(); err != nil {
		log.Errorf("tty", "set graphics mode failed: %v", err)
	} else {
		log.Infof("tty", "KD_GRAPHICS set")
	}
	if err := HideCursor(); err != nil {
		log.Errorf("tty", "hide cursor failed: %v", err)
	}
	return func() {
		if err := ShowCursor(); err != nil {
			log.Errorf("tty", "show cursor failed: %v", err)
		}
		if err := RestoreTextMode(); err != nil {
			log.Errorf("tty", "restore text mode failed: %v", err)
		} else {
			log.Infof("tty", "KD_TEXT set")
		}
	}
}
