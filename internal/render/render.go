package render

import (
	"context"
	"image"
	"image/color"

	"golang.org/x/image/font"

	"github.com/rook-computer/clockface/internal/state"
)

type Renderer interface {
	Start(ctx context.Context) error
	Stop() error
	SetScreen(screen Screen)
	RedrawWithState(snap state.State)
	Capabilities() Capabilities
}

// Screen is a window: Start loads what it needs, Stop releases it and Draw
// paints one frame from a state snapshot.
type Screen interface {
	Start(ctx context.Context) error
	Stop() error
	Draw(r Drawer, s state.State)
}

// Capabilities describes the output device.
type Capabilities struct {
	Color bool
}

// NoopRenderer draws nothing.
type NoopRenderer struct{}

func (n *NoopRenderer) Start(ctx context.Context) error  { return nil }
func (n *NoopRenderer) Stop() error                      { return nil }
func (n *NoopRenderer) SetScreen(screen Screen)          {}
func (n *NoopRenderer) RedrawWithState(snap state.State) {}
func (n *NoopRenderer) Capabilities() Capabilities       { return Capabilities{Color: true} }

// Drawer is the surface screens draw on, without access to the device.
type Drawer interface {
	// Size returns the logical canvas size in pixels.
	Size() (width int, height int)

	FillBackground(c color.Color)

	// DrawText draws a single line of text inside rect. The baseline is
	// placed so the glyphs are vertically centered in rect.
	DrawText(text string, rect image.Rectangle, style TextStyle)

	ImageSize(img image.Image) (width int, height int)
	// DrawImage composites img with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y int)
}

type TextAlign int

const (
	TextAlignLeft TextAlign = iota
	TextAlignCenter
	TextAlignRight
)

// TextStyle describes how to render text. A nil Face means the renderer
// default.
type TextStyle struct {
	Face  font.Face
	Color color.Color
	Align TextAlign
}
