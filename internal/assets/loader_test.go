package assets

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"

	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/logger"
)

func newTestLoader() *Loader {
	return NewLoader(logger.NoopLogger{}, 96)
}

// TestImageNone checks that "none" and the empty id mean no image.
func TestImageNone(t *testing.T) {
	t.Parallel()

	for _, id := range []string{"", "none", "  none "} {
		img, err := newTestLoader().Image(id)
		require.NoError(t, err)
		require.Nil(t, img)
	}
}

// TestImageDoge rasterises the embedded default image.
func TestImageDoge(t *testing.T) {
	t.Parallel()

	img, err := newTestLoader().Image(ImageDoge)
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.Equal(t, image.Rect(0, 0, 80, 80), img.Bounds())

	// Corner is outside every shape, the nose is solid black.
	_, _, _, cornerAlpha := img.At(0, 79).RGBA()
	assert.Zero(t, cornerAlpha)
	r, g, b, a := img.At(40, 48).RGBA()
	assert.Equal(t, uint32(0xffff), a)
	assert.Less(t, r+g+b, uint32(0x3000))
}

// TestImageQR generates a QR code bounded by the max size.
func TestImageQR(t *testing.T) {
	t.Parallel()

	img, err := newTestLoader().Image("qr:https://example.com/clockface")
	require.NoError(t, err)
	require.NotNil(t, img)
	assert.LessOrEqual(t, img.Bounds().Dx(), 96)
}

// TestImageFile decodes and downsizes a PNG from disk.
func TestImageFile(t *testing.T) {
	t.Parallel()

	src := image.NewRGBA(image.Rect(0, 0, 300, 150))
	for y := 0; y < 150; y++ {
		for x := 0; x < 300; x++ {
			src.Set(x, y, color.RGBA{R: 0xff, A: 0xff})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, src))

	path := filepath.Join(t.TempDir(), "face.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o600))

	img, err := newTestLoader().Image("file:" + path)
	require.NoError(t, err)
	assert.Equal(t, 96, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())
}

// TestImageErrors covers unknown ids and unreadable files.
func TestImageErrors(t *testing.T) {
	t.Parallel()

	_, err := newTestLoader().Image("pdc:doge")
	require.ErrorIs(t, err, ErrUnknownImage)

	_, err = newTestLoader().Image("file:" + filepath.Join(t.TempDir(), "missing.png"))
	require.ErrorIs(t, err, os.ErrNotExist)

	garbage := filepath.Join(t.TempDir(), "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0o600))
	_, err = newTestLoader().Image("file:" + garbage)
	require.Error(t, err)
}

// TestFont loads built-in fonts and falls back for unknown ones.
func TestFont(t *testing.T) {
	t.Parallel()

	loader := newTestLoader()

	face, err := loader.LoadFont(config.FontSpec{Name: "gobold", Size: 38})
	require.NoError(t, err)
	assert.Greater(t, face.Metrics().Ascent.Ceil(), 20)

	_, err = loader.LoadFont(config.FontSpec{Name: "comic-neue", Size: 38})
	require.ErrorIs(t, err, ErrUnknownFont)

	_, err = loader.LoadFont(config.FontSpec{Name: filepath.Join(t.TempDir(), "missing.ttf"), Size: 12})
	require.ErrorIs(t, err, os.ErrNotExist)

	assert.Equal(t, basicfont.Face7x13, loader.Font(config.FontSpec{Name: "comic-neue", Size: 38}))
}
