package layout

import "image"

// Inset shrinks rect by paddingPx on all sides.
func Inset(rect image.Rectangle, paddingPx int) image.Rectangle {
	if paddingPx <= 0 {
		return rect
	}
	out := image.Rect(rect.Min.X+paddingPx, rect.Min.Y+paddingPx, rect.Max.X-paddingPx, rect.Max.Y-paddingPx)
	return Normalize(out)
}

// Normalize ensures Min is <= Max on both axes.
func Normalize(rect image.Rectangle) image.Rectangle {
	if rect.Min.X > rect.Max.X {
		rect.Min.X, rect.Max.X = rect.Max.X, rect.Min.X
	}
	if rect.Min.Y > rect.Max.Y {
		rect.Min.Y, rect.Max.Y = rect.Max.Y, rect.Min.Y
	}
	return rect
}

// SplitHorizontal splits rect into top and bottom parts.
// topHeightPx is clamped to [0, rect.Dy()].
func SplitHorizontal(rect image.Rectangle, topHeightPx int) (top image.Rectangle, bottom image.Rectangle) {
	rect = Normalize(rect)
	height := rect.Dy()
	if topHeightPx < 0 {
		topHeightPx = 0
	}
	if topHeightPx > height {
		topHeightPx = height
	}
	top = image.Rect(rect.Min.X, rect.Min.Y, rect.Max.X, rect.Min.Y+topHeightPx)
	bottom = image.Rect(rect.Min.X, rect.Min.Y+topHeightPx, rect.Max.X, rect.Max.Y)
	return top, bottom
}

// AnchorBottom returns the bottom band of rect, heightPx tall.
// heightPx is clamped to [0, rect.Dy()].
func AnchorBottom(rect image.Rectangle, heightPx int) image.Rectangle {
	rect = Normalize(rect)
	_, bottom := SplitHorizontal(rect, rect.Dy()-heightPx)
	return bottom
}

// CenterOrigin returns the top-left corner that centers a widthPx x heightPx
// box in rect. The box may overflow rect, in which case the origin lies
// outside it.
func CenterOrigin(rect image.Rectangle, widthPx, heightPx int) image.Point {
	rect = Normalize(rect)
	return image.Pt(rect.Min.X+(rect.Dx()-widthPx)/2, rect.Min.Y+(rect.Dy()-heightPx)/2)
}

// FitWithin scales (widthPx, heightPx) down uniformly so neither side
// exceeds maxPx. Sizes already within bounds are returned unchanged.
func FitWithin(widthPx, heightPx, maxPx int) (int, int) {
	if widthPx <= 0 || heightPx <= 0 || maxPx <= 0 {
		return 0, 0
	}
	if widthPx <= maxPx && heightPx <= maxPx {
		return widthPx, heightPx
	}
	if widthPx >= heightPx {
		return maxPx, max(1, heightPx*maxPx/widthPx)
	}
	return max(1, widthPx*maxPx/heightPx), maxPx
}
