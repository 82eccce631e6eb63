package screens

import (
	"context"
	"image"

	"golang.org/x/image/font"

	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/logger"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/render/layout"
	"github.com/rook-computer/clockface/internal/state"
)

const (
	timeBandHeight    = 50
	captionBandHeight = 38
	captionPadding    = 4
)

// Resources is the part of the asset loader the face needs.
type Resources interface {
	Image(id string) (image.Image, error)
	Font(spec config.FontSpec) font.Face
}

// WatchfaceScreen is the root window: background, centered image, time
// label at the top and an optional caption at the bottom.
type WatchfaceScreen struct {
	Resources   Resources
	Logger      logger.Logger
	ImageID     string
	TimeFont    config.FontSpec
	CaptionFont config.FontSpec

	image       image.Image
	timeFace    font.Face
	captionFace font.Face
}

func NewWatchfaceScreen(resources Resources, log logger.Logger, cfg config.Config) *WatchfaceScreen {
	imageID := cfg.Image
	if cfg.NoImage {
		imageID = "none"
	}
	return &WatchfaceScreen{
		Resources:   resources,
		Logger:      log,
		ImageID:     imageID,
		TimeFont:    cfg.TimeFont,
		CaptionFont: cfg.CaptionFont,
	}
}

// Start loads the image and fonts. A missing image is logged and the face
// is drawn without it.
func (screen *WatchfaceScreen) Start(ctx context.Context) error {
	img, err := screen.Resources.Image(screen.ImageID)
	switch {
	case err != nil:
		screen.Logger.Errorf("screen", "image %q is unavailable: %v", screen.ImageID, err)
	case img == nil:
		screen.Logger.Infof("screen", "no image configured")
	}
	screen.image = img

	screen.timeFace = screen.Resources.Font(screen.TimeFont)
	screen.captionFace = screen.Resources.Font(screen.CaptionFont)
	return nil
}

// Stop releases the image and font faces.
func (screen *WatchfaceScreen) Stop() error {
	screen.image = nil
	for _, face := range []font.Face{screen.timeFace, screen.captionFace} {
		if face != nil {
			_ = face.Close()
		}
	}
	screen.timeFace = nil
	screen.captionFace = nil
	return nil
}

// HasImage reports whether an image was loaded.
func (screen *WatchfaceScreen) HasImage() bool { return screen.image != nil }

func (screen *WatchfaceScreen) Draw(drawer render.Drawer, currentState state.State) {
	width, height := drawer.Size()
	bounds := image.Rect(0, 0, width, height)

	drawer.FillBackground(currentState.Background)

	if screen.image != nil {
		imageWidth, imageHeight := drawer.ImageSize(screen.image)
		origin := layout.CenterOrigin(bounds, imageWidth, imageHeight)
		drawer.DrawImage(screen.image, origin.X, origin.Y)
	}

	timeRect, _ := layout.SplitHorizontal(bounds, timeBandHeight)
	drawer.DrawText(currentState.Time, timeRect, render.TextStyle{
		Face:  screen.timeFace,
		Color: currentState.TimeColor,
		Align: render.TextAlignCenter,
	})

	if currentState.Caption != "" {
		captionRect := layout.Inset(layout.AnchorBottom(bounds, captionBandHeight), captionPadding)
		drawer.DrawText(currentState.Caption, captionRect, render.TextStyle{
			Face:  screen.captionFace,
			Color: currentState.CaptionColor,
			Align: render.TextAlignCenter,
		})
	}
}
