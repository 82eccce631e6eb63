package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvasFillBackground(t *testing.T) {
	t.Parallel()

	canvas := NewCanvas(144, 168)
	w, h := canvas.Size()
	require.Equal(t, 144, w)
	require.Equal(t, 168, h)

	canvas.FillBackground(TiffanyBlue)
	for y := 0; y < h; y += 7 {
		for x := 0; x < w; x += 5 {
			require.Equal(t, TiffanyBlue, canvas.Image().RGBAAt(x, y))
		}
	}

	canvas.FillBackground(nil)
	assert.Equal(t, Background, canvas.Image().RGBAAt(143, 167))
}

// TestCanvasDrawText checks glyph pixels land inside the rect and only
// there.
func TestCanvasDrawText(t *testing.T) {
	t.Parallel()

	canvas := NewCanvas(144, 168)
	canvas.FillBackground(Black)

	rect := image.Rect(0, 0, 144, 50)
	canvas.DrawText("12:34", rect, TextStyle{Color: White, Align: TextAlignCenter})

	img := canvas.Image()
	minX, maxX, lit := 144, -1, 0
	for y := 0; y < 168; y++ {
		for x := 0; x < 144; x++ {
			if img.RGBAAt(x, y) == Black {
				continue
			}
			require.True(t, image.Pt(x, y).In(rect), "pixel %d,%d outside rect", x, y)
			lit++
			minX = min(minX, x)
			maxX = max(maxX, x)
		}
	}
	require.Positive(t, lit)
	// Centered: the margins on both sides differ by at most one glyph cell.
	assert.InDelta(t, minX, 143-maxX, 7)
}

func TestCanvasDrawTextAlignment(t *testing.T) {
	t.Parallel()

	leftmost := func(align TextAlign) int {
		canvas := NewCanvas(144, 40)
		canvas.FillBackground(Black)
		canvas.DrawText("wow", image.Rect(0, 0, 144, 40), TextStyle{Color: White, Align: align})
		for x := 0; x < 144; x++ {
			for y := 0; y < 40; y++ {
				if canvas.Image().RGBAAt(x, y) != Black {
					return x
				}
			}
		}
		return -1
	}

	left, center, right := leftmost(TextAlignLeft), leftmost(TextAlignCenter), leftmost(TextAlignRight)
	require.GreaterOrEqual(t, left, 0)
	assert.Less(t, left, center)
	assert.Less(t, center, right)
}

func TestCanvasDrawImage(t *testing.T) {
	t.Parallel()

	canvas := NewCanvas(144, 168)
	canvas.FillBackground(Folly)

	src := image.NewRGBA(image.Rect(0, 0, 10, 20))
	for y := 0; y < 20; y++ {
		for x := 0; x < 10; x++ {
			src.SetRGBA(x, y, OxfordBlue)
		}
	}
	// Transparent pixels keep the background.
	src.SetRGBA(0, 0, color.RGBA{})

	w, h := canvas.ImageSize(src)
	require.Equal(t, 10, w)
	require.Equal(t, 20, h)

	canvas.DrawImage(src, 30, 40)
	img := canvas.Image()
	assert.Equal(t, Folly, img.RGBAAt(30, 40))
	assert.Equal(t, OxfordBlue, img.RGBAAt(31, 40))
	assert.Equal(t, OxfordBlue, img.RGBAAt(39, 59))
	assert.Equal(t, Folly, img.RGBAAt(40, 59))
	assert.Equal(t, Folly, img.RGBAAt(39, 60))

	canvas.DrawImage(nil, 0, 0)
	w, h = canvas.ImageSize(nil)
	assert.Zero(t, w)
	assert.Zero(t, h)
}
