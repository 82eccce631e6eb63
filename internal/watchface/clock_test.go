package watchface

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

func at(hour, minute int) time.Time {
	return time.Date(2024, 3, 9, hour, minute, 17, 0, time.Local)
}

func TestFormatTime(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hour, minute int
		want24       string
		want12       string
	}{
		{hour: 23, minute: 59, want24: "23:59", want12: "11:59"},
		{hour: 0, minute: 5, want24: "00:05", want12: "12:05"},
		{hour: 12, minute: 0, want24: "12:00", want12: "12:00"},
		{hour: 9, minute: 30, want24: "09:30", want12: "09:30"},
		{hour: 13, minute: 1, want24: "13:01", want12: "01:01"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want24, FormatTime(at(tc.hour, tc.minute), true))
		assert.Equal(t, tc.want12, FormatTime(at(tc.hour, tc.minute), false))
	}
}

// TestFormatTimeShape checks every minute of the day in both styles.
func TestFormatTimeShape(t *testing.T) {
	t.Parallel()

	for minute := 0; minute < 24*60; minute++ {
		now := at(minute/60, minute%60)
		for _, use24h := range []bool{true, false} {
			text := FormatTime(now, use24h)
			require.Len(t, text, 5)
			require.Regexp(t, timePattern, text)
		}
	}
}

func TestClockStateUpdate(t *testing.T) {
	t.Parallel()

	clock := NewClockState()
	require.Equal(t, PlaceholderTime, clock.Text())

	now := at(7, 42)
	source := func() (time.Time, bool) { return now, true }

	text, changed := clock.Update(source, FixedPreference(true))
	assert.Equal(t, "07:42", text)
	assert.True(t, changed)

	// Same minute, same string.
	text, changed = clock.Update(source, FixedPreference(true))
	assert.Equal(t, "07:42", text)
	assert.False(t, changed)

	now = at(19, 42)
	text, _ = clock.Update(source, FixedPreference(false))
	assert.Equal(t, "07:42", text)
	text, _ = clock.Update(source, FixedPreference(true))
	assert.Equal(t, "19:42", text)
}

// TestClockStateUnavailableSource keeps the previous string.
func TestClockStateUnavailableSource(t *testing.T) {
	t.Parallel()

	clock := NewClockState()
	text, changed := clock.Update(func() (time.Time, bool) { return time.Time{}, false }, nil)
	assert.Equal(t, PlaceholderTime, text)
	assert.False(t, changed)

	clock.Update(func() (time.Time, bool) { return at(8, 15), true }, nil)
	text, changed = clock.Update(func() (time.Time, bool) { return time.Time{}, false }, nil)
	assert.Equal(t, "08:15", text)
	assert.False(t, changed)

	text, _ = clock.Update(nil, nil)
	assert.Equal(t, "08:15", text)
}

func TestLocalePreference(t *testing.T) {
	t.Parallel()

	env := func(values map[string]string) func(string) string {
		return func(key string) string { return values[key] }
	}

	cases := []struct {
		name   string
		values map[string]string
		want   bool
	}{
		{name: "unset", values: nil, want: true},
		{name: "us", values: map[string]string{"LANG": "en_US.UTF-8"}, want: false},
		{name: "germany", values: map[string]string{"LANG": "de_DE.UTF-8"}, want: true},
		{name: "lc_time wins over lang", values: map[string]string{"LC_TIME": "en_GB.UTF-8", "LANG": "en_US.UTF-8"}, want: true},
		{name: "lc_all wins", values: map[string]string{"LC_ALL": "en_AU", "LC_TIME": "fr_FR"}, want: false},
		{name: "posix", values: map[string]string{"LANG": "C"}, want: true},
		{name: "modifier", values: map[string]string{"LANG": "en_CA@euro"}, want: false},
	}
	for _, tc := range cases {
		pref := LocalePreference{Lookup: env(tc.values)}
		assert.Equal(t, tc.want, pref.Use24Hour(), tc.name)
	}
}

func TestPreferenceFor(t *testing.T) {
	t.Parallel()

	assert.True(t, PreferenceFor("24h").Use24Hour())
	assert.False(t, PreferenceFor("12h").Use24Hour())
	assert.IsType(t, LocalePreference{}, PreferenceFor("locale"))
}
