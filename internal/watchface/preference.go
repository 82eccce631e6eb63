package watchface

import (
	"os"
	"strings"

	"github.com/rook-computer/clockface/internal/config"
)

// Preference answers whether the time is shown in 24-hour style. It is
// queried once per tick.
type Preference interface {
	Use24Hour() bool
}

type FixedPreference bool

func (p FixedPreference) Use24Hour() bool { return bool(p) }

// twelveHourRegions lists territories whose locales default to a 12-hour
// clock.
var twelveHourRegions = map[string]bool{
	"US": true, "CA": true, "AU": true, "NZ": true, "PH": true,
	"IN": true, "PK": true, "EG": true, "SA": true, "CO": true,
}

// LocalePreference follows the platform locale. Lookup defaults to
// os.Getenv and is consulted on every call, so a changed LC_TIME takes effect
// on the next tick.
type LocalePreference struct {
	Lookup func(string) string
}

func (p LocalePreference) Use24Hour() bool {
	lookup := p.Lookup
	if lookup == nil {
		lookup = os.Getenv
	}
	for _, key := range []string{"LC_ALL", "LC_TIME", "LANG"} {
		if value := lookup(key); value != "" {
			return !localeUses12Hour(value)
		}
	}
	return true
}

// localeUses12Hour parses "en_US.UTF-8@euro" style names.
func localeUses12Hour(locale string) bool {
	if i := strings.IndexAny(locale, ".@"); i >= 0 {
		locale = locale[:i]
	}
	_, region, ok := strings.Cut(locale, "_")
	if !ok {
		return false
	}
	return twelveHourRegions[strings.ToUpper(region)]
}

// PreferenceFor maps a validated clock format to its Preference.
func PreferenceFor(clockFormat string) Preference {
	switch clockFormat {
	case config.ClockFormat12h:
		return FixedPreference(false)
	case config.ClockFormatLocale:
		return LocalePreference{}
	default:
		return FixedPreference(true)
	}
}
