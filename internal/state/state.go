package state

import "image/color"

type Phase int

const (
	BOOTING Phase = iota
	RUNNING
	STOPPED
)

func (phase Phase) String() string {
	switch phase {
	case BOOTING:
		return "booting"
	case RUNNING:
		return "running"
	case STOPPED:
		return "stopped"
	default:
		return "unknown"
	}
}

// Variant is the active variant index. Set is false until the first
// selection has been made.
type Variant struct {
	Index int
	Set   bool
}

// State is everything a screen needs to draw one frame of the face.
type State struct {
	Phase Phase

	// Time is the last rendered HH:MM string.
	Time      string
	TimeColor color.Color

	Background color.Color

	// Caption is empty for editions without captions.
	Caption      string
	CaptionColor color.Color

	Variant Variant
}
