package watchface

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/state"
)

// recordingSource logs each draw into a shared call log.
type recordingSource struct {
	log   *[]string
	draws []int
	calls int
}

func (s *recordingSource) IntN(n int) int {
	*s.log = append(*s.log, "variant")
	v := s.draws[s.calls%len(s.draws)] % n
	s.calls++
	return v
}

func newTestController(t *testing.T, cfg config.Config, draws ...int) (*Controller, *[]string) {
	t.Helper()

	calls := &[]string{}
	c, err := FromConfig(cfg, render.Capabilities{Color: true}, &recordingSource{log: calls, draws: draws})
	require.NoError(t, err)
	c.TimeSource = func() (time.Time, bool) {
		*calls = append(*calls, "time")
		return time.Date(2024, 5, 1, 23, 59, 0, 0, time.Local), true
	}
	return c, calls
}

func editionConfig(edition string) config.Config {
	cfg := config.Default()
	cfg.Edition = edition
	cfg.ClockFormat = config.ClockFormat24h
	return cfg
}

func TestControllerBeforeStartup(t *testing.T) {
	t.Parallel()

	c, calls := newTestController(t, editionConfig(config.EditionBackground), 0)

	snap := c.Snapshot()
	assert.Equal(t, state.BOOTING, snap.Phase)
	assert.Equal(t, PlaceholderTime, snap.Time)
	assert.Equal(t, render.Folly, snap.Background)
	assert.False(t, snap.Variant.Set)
	assert.Empty(t, *calls)
}

// TestControllerBackgroundStartup: startup sets the time only.
func TestControllerBackgroundStartup(t *testing.T) {
	t.Parallel()

	c, calls := newTestController(t, editionConfig(config.EditionBackground), 2, 0)
	c.Startup()

	snap := c.Snapshot()
	assert.Equal(t, state.RUNNING, snap.Phase)
	assert.Equal(t, "23:59", snap.Time)
	assert.Equal(t, render.Folly, snap.Background)
	assert.False(t, snap.Variant.Set)
	assert.Equal(t, []string{"time"}, *calls)

	c.Tick()
	snap = c.Snapshot()
	assert.Equal(t, []string{"time", "time", "variant"}, *calls)
	assert.Equal(t, state.Variant{Index: 2, Set: true}, snap.Variant)
	assert.Equal(t, render.ChromeYellow, snap.Background)
	assert.Empty(t, snap.Caption)
}

// TestControllerCaptionStartup: the caption edition picks a variant at
// startup, so the first tick cannot repeat it.
func TestControllerCaptionStartup(t *testing.T) {
	t.Parallel()

	c, calls := newTestController(t, editionConfig(config.EditionCaption), 1, 1, 0)
	c.Startup()

	snap := c.Snapshot()
	assert.Equal(t, []string{"time", "variant"}, *calls)
	assert.Equal(t, "such time", snap.Caption)
	assert.Equal(t, render.ChromeYellow, snap.CaptionColor)
	assert.Equal(t, render.Folly, snap.Background)

	c.Tick()
	snap = c.Snapshot()
	assert.Equal(t, []string{"time", "variant", "time", "variant", "variant"}, *calls)
	assert.Equal(t, "wow", snap.Caption)
	assert.Equal(t, render.TiffanyBlue, snap.Background)
}

func TestControllerStop(t *testing.T) {
	t.Parallel()

	c, _ := newTestController(t, editionConfig(config.EditionAdaptive), 0)
	c.Startup()
	c.Stop()
	assert.Equal(t, state.STOPPED, c.Snapshot().Phase)
}

// TestControllerMonochrome: a mono display keeps black and white and
// varies the caption only.
func TestControllerMonochrome(t *testing.T) {
	t.Parallel()

	cfg := editionConfig(config.EditionAdaptive)
	cfg.Display = config.DisplayMono
	c, err := FromConfig(cfg, render.Capabilities{Color: true}, &scriptedSource{draws: []int{2}})
	require.NoError(t, err)
	c.TimeSource = func() (time.Time, bool) { return time.Date(2024, 5, 1, 8, 0, 0, 0, time.Local), true }

	c.Startup()
	assert.Equal(t, render.Black, c.Snapshot().Background)

	c.Tick()
	snap := c.Snapshot()
	assert.Equal(t, render.Black, snap.Background)
	assert.Equal(t, render.White, snap.TimeColor)
	assert.Equal(t, "very watch", snap.Caption)
	assert.Equal(t, render.White, snap.CaptionColor)
}
