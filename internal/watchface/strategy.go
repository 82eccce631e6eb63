package watchface

import (
	"image/color"

	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/render"
)

// Effect is what applying a variant changes on the display.
type Effect struct {
	Background   color.Color
	TimeColor    color.Color
	Caption      string
	CaptionColor color.Color
}

// Palette is the per-variant table of an edition. Captions are empty for
// editions that only change the background.
type Palette []Effect

var backgroundPalette = Palette{
	{Background: render.TiffanyBlue, TimeColor: render.White},
	{Background: render.Folly, TimeColor: render.White},
	{Background: render.ChromeYellow, TimeColor: render.White},
}

var captionPalette = Palette{
	{Background: render.TiffanyBlue, TimeColor: render.White, Caption: "wow", CaptionColor: render.White},
	{Background: render.Folly, TimeColor: render.White, Caption: "such time", CaptionColor: render.ChromeYellow},
	{Background: render.ChromeYellow, TimeColor: render.White, Caption: "very watch", CaptionColor: render.OxfordBlue},
}

// PaletteFor returns the variant table of a validated edition.
func PaletteFor(edition string) Palette {
	if edition == config.EditionBackground {
		return backgroundPalette
	}
	return captionPalette
}

// Strategy maps a variant index to its display effect.
type Strategy interface {
	Name() string
	// Initial is the effect shown before any variant is selected.
	Initial() Effect
	Effect(index int) Effect
}

// ColorVariantStrategy uses the palette as is.
type ColorVariantStrategy struct {
	Palette Palette
}

func (ColorVariantStrategy) Name() string { return "color" }

func (s ColorVariantStrategy) Initial() Effect {
	return Effect{Background: render.Background, TimeColor: render.Foreground}
}

func (s ColorVariantStrategy) Effect(index int) Effect {
	return s.Palette[index]
}

// MonochromeStrategy keeps a black background with white text and only
// varies the caption.
type MonochromeStrategy struct {
	Palette Palette
}

func (MonochromeStrategy) Name() string { return "mono" }

func (MonochromeStrategy) Initial() Effect {
	return Effect{Background: render.Black, TimeColor: render.White}
}

func (s MonochromeStrategy) Effect(index int) Effect {
	effect := Effect{Background: render.Black, TimeColor: render.White, Caption: s.Palette[index].Caption}
	if effect.Caption != "" {
		effect.CaptionColor = render.White
	}
	return effect
}

// StrategyFor resolves the color capability once at startup. Only the
// adaptive edition honours a monochrome display; display "auto" defers to
// what the renderer reports.
func StrategyFor(cfg config.Config, caps render.Capabilities) Strategy {
	palette := PaletteFor(cfg.Edition)
	if cfg.Edition != config.EditionAdaptive {
		return ColorVariantStrategy{Palette: palette}
	}
	hasColor := caps.Color
	switch cfg.Display {
	case config.DisplayColor:
		hasColor = true
	case config.DisplayMono:
		hasColor = false
	}
	if hasColor {
		return ColorVariantStrategy{Palette: palette}
	}
	return MonochromeStrategy{Palette: palette}
}
