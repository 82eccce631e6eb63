package assets

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/freetype/truetype"
	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	_ "golang.org/x/image/webp"

	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/logger"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/render/layout"
)

const (
	ImageNone = "none"
	ImageDoge = "doge"

	prefixFile = "file:"
	prefixQR   = "qr:"

	fontDPI = 72
)

var (
	ErrUnknownImage = errors.New("unknown image identifier")
	ErrUnknownFont  = errors.New("unknown font")
)

var builtinFonts = map[string][]byte{
	"gobold":    gobold.TTF,
	"goregular": goregular.TTF,
	"gomono":    gomono.TTF,
}

// Loader resolves the opaque image and font identifiers used in the
// configuration into decoded resources.
type Loader struct {
	Logger logger.Logger
	// MaxImageSize bounds both sides of raster and QR images.
	MaxImageSize int
	// ReadFile defaults to os.ReadFile.
	ReadFile func(string) ([]byte, error)
}

func NewLoader(log logger.Logger, maxImageSize int) *Loader {
	if log == nil {
		log = logger.NoopLogger{}
	}
	return &Loader{Logger: log, MaxImageSize: maxImageSize, ReadFile: os.ReadFile}
}

// Image decodes the image behind id. "none" yields (nil, nil).
func (l *Loader) Image(id string) (image.Image, error) {
	id = strings.TrimSpace(id)
	switch {
	case id == "" || id == ImageNone:
		return nil, nil
	case id == ImageDoge:
		vec, err := ParseVectorImage(DogeYAML)
		if err != nil {
			return nil, err
		}
		return vec.Rasterize(1), nil
	case strings.HasPrefix(id, prefixQR):
		return render.GenerateQRCodeImage(strings.TrimPrefix(id, prefixQR), l.maxSize(), render.Black, render.White)
	case strings.HasPrefix(id, prefixFile):
		return l.fileImage(strings.TrimPrefix(id, prefixFile))
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownImage, id)
	}
}

func (l *Loader) fileImage(path string) (image.Image, error) {
	data, err := l.readFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}

	// Vector descriptions are accepted from disk as well.
	if ext := strings.ToLower(filepath.Ext(path)); ext == ".yaml" || ext == ".yml" {
		vec, err := ParseVectorImage(data)
		if err != nil {
			return nil, err
		}
		return vec.Rasterize(1), nil
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode image %s: %w", path, err)
	}
	l.Logger.Debugf("assets", "decoded %s image %s, %dx%d", format, path, img.Bounds().Dx(), img.Bounds().Dy())
	return l.fit(img), nil
}

// fit scales img down to MaxImageSize and composites it into an RGBA image.
func (l *Loader) fit(img image.Image) image.Image {
	bounds := img.Bounds()
	width, height := layout.FitWithin(bounds.Dx(), bounds.Dy(), l.maxSize())
	if width == bounds.Dx() && height == bounds.Dy() {
		return img
	}
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Over, nil)
	return scaled
}

func (l *Loader) maxSize() int {
	if l.MaxImageSize <= 0 {
		return config.Default().ImageMaxSize
	}
	return l.MaxImageSize
}

func (l *Loader) readFile(path string) ([]byte, error) {
	if l.ReadFile == nil {
		return os.ReadFile(path)
	}
	return l.ReadFile(path)
}

// LoadFont parses the font named by spec: a built-in Go font or a file
// path. OpenType parsing is tried first and the freetype parser second.
func (l *Loader) LoadFont(spec config.FontSpec) (font.Face, error) {
	data, ok := builtinFonts[strings.ToLower(spec.Name)]
	if !ok {
		if !strings.ContainsAny(spec.Name, `/\.`) {
			return nil, fmt.Errorf("%w: %q", ErrUnknownFont, spec.Name)
		}
		var err error
		data, err = l.readFile(filepath.Clean(spec.Name))
		if err != nil {
			return nil, fmt.Errorf("read font: %w", err)
		}
	}

	otf, otfErr := opentype.Parse(data)
	if otfErr == nil {
		face, err := opentype.NewFace(otf, &opentype.FaceOptions{Size: spec.Size, DPI: fontDPI, Hinting: font.HintingFull})
		if err == nil {
			return face, nil
		}
		otfErr = err
	}

	ttf, ttfErr := truetype.Parse(data)
	if ttfErr != nil {
		return nil, fmt.Errorf("parse font %s: opentype: %v, truetype: %w", spec.Name, otfErr, ttfErr)
	}
	l.Logger.Infof("assets", "font %s loaded with freetype after opentype failed: %v", spec.Name, otfErr)
	return truetype.NewFace(ttf, &truetype.Options{Size: spec.Size, DPI: fontDPI, Hinting: font.HintingFull}), nil
}

// Font is LoadFont that never fails: errors are logged and the 7x13 bitmap
// font is returned instead.
func (l *Loader) Font(spec config.FontSpec) font.Face {
	face, err := l.LoadFont(spec)
	if err != nil {
		l.Logger.Errorf("assets", "font %s failed, using basicfont: %v", spec.Name, err)
		return basicfont.Face7x13
	}
	l.Logger.Infof("assets", "loaded font %s at %.0fpt", spec.Name, spec.Size)
	return face
}
