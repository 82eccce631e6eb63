package render

import (
	"context"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"regexp"

	"github.com/rook-computer/clockface/internal/logger"
	"github.com/rook-computer/clockface/internal/state"
)

// frameVerb matches the frame number verb in a path, e.g. %d or %03d.
var frameVerb = regexp.MustCompile(`%0?[0-9]*d`)

// PNGRenderer writes every frame to a PNG file. When Path contains a %d
// verb each frame gets its own numbered file, otherwise the file is
// replaced in place.
type PNGRenderer struct {
	Path   string
	Logger logger.Logger

	canvas  *Canvas
	current Screen
	frames  int
}

func NewPNGRenderer(path string, width, height int) *PNGRenderer {
	return &PNGRenderer{Path: path, Logger: logger.NoopLogger{}, canvas: NewCanvas(width, height)}
}

func (r *PNGRenderer) Start(ctx context.Context) error {
	dir := filepath.Dir(r.framePath(0))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create png output dir: %w", err)
	}
	r.Logger.Infof("png", "writing frames to %s", r.Path)
	return nil
}

func (r *PNGRenderer) Stop() error { return nil }

func (r *PNGRenderer) SetScreen(screen Screen) { r.current = screen }

func (r *PNGRenderer) Capabilities() Capabilities { return Capabilities{Color: true} }

// Frames is the number of frames written so far.
func (r *PNGRenderer) Frames() int { return r.frames }

// Canvas exposes the last drawn frame.
func (r *PNGRenderer) Canvas() *Canvas { return r.canvas }

func (r *PNGRenderer) RedrawWithState(snap state.State) {
	if r.current == nil {
		return
	}
	r.current.Draw(r.canvas, snap)
	path := r.framePath(r.frames)
	if err := writePNG(path, r.canvas); err != nil {
		r.Logger.Errorf("png", "write frame %s: %v", path, err)
		return
	}
	r.frames++
	r.Logger.Debugf("png", "frame %s written, time=%s", path, snap.Time)
}

func (r *PNGRenderer) framePath(frame int) string {
	if frameVerb.MatchString(r.Path) {
		return fmt.Sprintf(r.Path, frame)
	}
	return r.Path
}

// writePNG encodes into a temp file next to path and renames it, so readers
// never see a half-written frame.
func writePNG(path string, canvas *Canvas) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".frame-*.png")
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := png.Encode(tmp, canvas.Image()); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
