//go:build linux

package system

import (
	"context"
	"encoding/binary"
	"os"
	"path/filepath"
	"sync"

	"golang.org/x/sys/unix"

	"github.com/rook-computer/clockface/internal/logger"
)

const (
	evKey = 0x01

	// Linux input-event-codes.h
	keyF4 = 62

	keyPressed = 1
)

// inputEventLayout describes struct input_event on this arch:
// timeval, u16 type, u16 code, s32 value.
type inputEventLayout struct {
	timevalSize int
	size        int
}

func hostEventLayout() inputEventLayout {
	tv := binary.Size(unix.Timeval{})
	if tv <= 0 {
		tv = 16
	}
	return inputEventLayout{timevalSize: tv, size: tv + 2 + 2 + 4}
}

// containsF4Press scans buf as a run of input_event records.
func (l inputEventLayout) containsF4Press(buf []byte) bool {
	for off := 0; off+l.size <= len(buf); off += l.size {
		rec := buf[off : off+l.size]
		typ := binary.LittleEndian.Uint16(rec[l.timevalSize:])
		code := binary.LittleEndian.Uint16(rec[l.timevalSize+2:])
		value := int32(binary.LittleEndian.Uint32(rec[l.timevalSize+4:]))
		if typ == evKey && code == keyF4 && value == keyPressed {
			return true
		}
	}
	return false
}

// StartExitOnF4 watches the evdev devices under /dev/input and calls onExit
// once when F4 goes down. It is best effort: no devices means no watcher.
func StartExitOnF4(ctx context.Context, log logger.Logger, onExit func()) {
	if onExit == nil {
		return
	}

	paths, err := filepath.Glob("/dev/input/event*")
	if err != nil || len(paths) == 0 {
		log.Infof("input", "no evdev devices found for F4 exit")
		return
	}

	layout := hostEventLayout()
	var once sync.Once
	trigger := func() {
		once.Do(func() {
			log.Infof("input", "F4 pressed: exiting")
			onExit()
		})
	}

	for _, path := range paths {
		go watchDevice(ctx, path, layout, trigger)
	}
}

func watchDevice(ctx context.Context, path string, layout inputEventLayout, trigger func()) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK, 0)
	if err != nil {
		return
	}
	f := os.NewFile(uintptr(fd), path)
	defer func() { _ = f.Close() }()

	buf := make([]byte, 4096)
	for ctx.Err() == nil {
		pollFds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		if _, err := unix.Poll(pollFds, 250); err != nil {
			if err == unix.EINTR {
				continue
			}
			// Device went away.
			return
		}
		if pollFds[0].Revents&unix.POLLIN == 0 {
			continue
		}

		n, err := unix.Read(fd, buf)
		if err != nil {
			if err == unix.EAGAIN || err == unix.EINTR {
				continue
			}
			return
		}
		if layout.containsF4Press(buf[:n]) {
			trigger()
			return
		}
	}
}
