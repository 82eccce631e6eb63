package render

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas is the offscreen logical surface every pixel renderer draws into
// before presenting it to its device.
type Canvas struct {
	img *image.RGBA
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Image exposes the backing pixels.
func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) Size() (int, int) {
	bounds := c.img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (c *Canvas) FillBackground(fill color.Color) {
	if fill == nil {
		fill = Background
	}
	draw.Draw(c.img, c.img.Bounds(), &image.Uniform{C: fill}, image.Point{}, draw.Src)
}

func (c *Canvas) DrawText(text string, rect image.Rectangle, style TextStyle) {
	if text == "" {
		return
	}
	face := style.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	textColor := style.Color
	if textColor == nil {
		textColor = Foreground
	}

	drawer := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(textColor),
		Face: face,
	}
	textWidth := drawer.MeasureString(text).Ceil()

	var xPos int
	switch style.Align {
	case TextAlignCenter:
		xPos = rect.Min.X + (rect.Dx()-textWidth)/2
	case TextAlignRight:
		xPos = rect.Max.X - textWidth
	default:
		xPos = rect.Min.X
	}

	// Center the ascent+descent box of the face inside rect.
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()
	descent := metrics.Descent.Ceil()
	baseline := rect.Min.Y + (rect.Dy()-(ascent+descent))/2 + ascent

	drawer.Dot = fixed.P(xPos, baseline)
	drawer.DrawString(text)
}

func (c *Canvas) ImageSize(img image.Image) (int, int) {
	if img == nil {
		return 0, 0
	}
	bounds := img.Bounds()
	return bounds.Dx(), bounds.Dy()
}

func (c *Canvas) DrawImage(img image.Image, x, y int) {
	if img == nil {
		return
	}
	bounds := img.Bounds()
	destinationRect := image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy())
	draw.Draw(c.img, destinationRect, img, bounds.Min, draw.Over)
}
