package watchface

import "time"

// PlaceholderTime is shown until the first successful time update.
const PlaceholderTime = "00:00"

// TimeSource reports the current local time. ok is false when no time is
// available.
type TimeSource func() (now time.Time, ok bool)

// SystemTime is the TimeSource backed by the host clock.
func SystemTime() (time.Time, bool) { return time.Now(), true }

// FormatTime renders t as exactly five characters: "15:04" in 24-hour
// style, otherwise "03:04" with midnight and noon shown as 12.
func FormatTime(t time.Time, use24h bool) string {
	if use24h {
		return t.Format("15:04")
	}
	return t.Format("03:04")
}

// ClockState holds the last rendered time string.
type ClockState struct {
	text string
}

func NewClockState() *ClockState {
	return &ClockState{text: PlaceholderTime}
}

func (c *ClockState) Text() string { return c.text }

// Update reads source and pref once and stores the new string. When the
// source has no time the previous string is kept and changed is false.
func (c *ClockState) Update(source TimeSource, pref Preference) (text string, changed bool) {
	if source == nil {
		return c.text, false
	}
	now, ok := source()
	if !ok {
		return c.text, false
	}
	next := FormatTime(now, pref == nil || pref.Use24Hour())
	changed = next != c.text
	c.text = next
	return c.text, changed
}
