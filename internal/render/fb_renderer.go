package render

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"sync/atomic"

	fb "github.com/gonutz/framebuffer"

	"github.com/rook-computer/clockface/internal/logger"
	"github.com/rook-computer/clockface/internal/state"
)

// FBRenderer renders to the Linux framebuffer using an offscreen logical canvas.
type FBRenderer struct {
	Device string
	Logger logger.Logger

	fbDev   *fb.Device
	canvas  *Canvas
	running atomic.Bool
	current Screen
}

func NewFBRenderer(device string, width, height int) *FBRenderer {
	return &FBRenderer{Device: device, Logger: logger.NoopLogger{}, canvas: NewCanvas(width, height)}
}

func (r *FBRenderer) Start(ctx context.Context) error {
	dev, err := fb.Open(r.Device)
	if err != nil {
		return fmt.Errorf("open framebuffer %s: %w", r.Device, err)
	}
	r.fbDev = dev
	bounds := dev.Bounds()
	r.Logger.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	r.running.Store(true)
	return nil
}

func (r *FBRenderer) Stop() error {
	r.running.Store(false)
	if r.fbDev != nil {
		r.fbDev.Close()
		r.fbDev = nil
	}
	return nil
}

func (r *FBRenderer) SetScreen(screen Screen) { r.current = screen }

func (r *FBRenderer) Capabilities() Capabilities { return Capabilities{Color: true} }

func (r *FBRenderer) RedrawWithState(snap state.State) {
	if !r.running.Load() || r.current == nil || r.fbDev == nil {
		return
	}
	r.current.Draw(r.canvas, snap)
	blitToFB(r.fbDev, r.canvas.Image())
	r.Logger.Debugf("fb", "redraw done, phase=%s time=%s", snap.Phase, snap.Time)
}

// blitToFB scales the canvas onto the device with nearest-neighbour sampling.
func blitToFB(dev *fb.Device, canvas *image.RGBA) {
	bounds := dev.Bounds()
	fbWidth := bounds.Dx()
	fbHeight := bounds.Dy()
	canvasWidth := canvas.Bounds().Dx()
	canvasHeight := canvas.Bounds().Dy()
	for y := 0; y < fbHeight; y++ {
		sy := (y * canvasHeight) / fbHeight
		for x := 0; x < fbWidth; x++ {
			sx := (x * canvasWidth) / fbWidth
			pixel := canvas.RGBAAt(sx, sy)
			dev.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
