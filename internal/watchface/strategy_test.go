package watchface

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/render"
)

func TestPaletteFor(t *testing.T) {
	t.Parallel()

	for _, edition := range []string{config.EditionBackground, config.EditionCaption, config.EditionAdaptive} {
		assert.Len(t, PaletteFor(edition), VariantCount, edition)
	}
	for _, effect := range PaletteFor(config.EditionBackground) {
		assert.Empty(t, effect.Caption)
	}
	for _, effect := range PaletteFor(config.EditionCaption) {
		assert.NotEmpty(t, effect.Caption)
	}
}

func TestStrategyFor(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		edition string
		display string
		color   bool
		want    string
	}{
		{name: "background ignores mono", edition: config.EditionBackground, display: config.DisplayMono, color: false, want: "color"},
		{name: "caption ignores mono", edition: config.EditionCaption, display: config.DisplayAuto, color: false, want: "color"},
		{name: "adaptive auto color", edition: config.EditionAdaptive, display: config.DisplayAuto, color: true, want: "color"},
		{name: "adaptive auto mono", edition: config.EditionAdaptive, display: config.DisplayAuto, color: false, want: "mono"},
		{name: "adaptive forced mono", edition: config.EditionAdaptive, display: config.DisplayMono, color: true, want: "mono"},
		{name: "adaptive forced color", edition: config.EditionAdaptive, display: config.DisplayColor, color: false, want: "color"},
	}
	for _, tc := range cases {
		cfg := config.Default()
		cfg.Edition = tc.edition
		cfg.Display = tc.display
		strategy := StrategyFor(cfg, render.Capabilities{Color: tc.color})
		assert.Equal(t, tc.want, strategy.Name(), tc.name)
	}
}

func TestColorVariantStrategy(t *testing.T) {
	t.Parallel()

	s := ColorVariantStrategy{Palette: captionPalette}
	assert.Equal(t, Effect{Background: render.Folly, TimeColor: render.White}, s.Initial())
	assert.Equal(t, captionPalette[0], s.Effect(0))
}

func TestMonochromeStrategy(t *testing.T) {
	t.Parallel()

	s := MonochromeStrategy{Palette: backgroundPalette}
	for i := range backgroundPalette {
		effect := s.Effect(i)
		assert.Equal(t, render.Black, effect.Background)
		assert.Equal(t, render.White, effect.TimeColor)
		assert.Empty(t, effect.Caption)
		assert.Nil(t, effect.CaptionColor)
	}
}
