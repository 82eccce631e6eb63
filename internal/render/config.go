package render

import "image/color"

// Named colors from the watch's 64-color palette (2 bits per channel).
var (
	Black        = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	White        = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	TiffanyBlue  = color.RGBA{R: 0x00, G: 0xAA, B: 0xAA, A: 0xFF} // #00aaaa
	Folly        = color.RGBA{R: 0xFF, G: 0x00, B: 0x55, A: 0xFF} // #ff0055
	ChromeYellow = color.RGBA{R: 0xFF, G: 0xAA, B: 0x00, A: 0xFF} // #ffaa00
	OxfordBlue   = color.RGBA{R: 0x00, G: 0x00, B: 0x55, A: 0xFF} // #000055
)

var (
	// Background is shown before the first variant is applied.
	Background = Folly
	// Foreground is the time label color.
	Foreground = White
)
