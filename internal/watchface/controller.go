// Package watchface holds the display state of the clock face: the time
// label, the random variant selection and the per-tick orchestration. It is
// driven from a single goroutine and does no locking of its own.
package watchface

import (
	"github.com/rook-computer/clockface/internal/config"
	"github.com/rook-computer/clockface/internal/logger"
	"github.com/rook-computer/clockface/internal/render"
	"github.com/rook-computer/clockface/internal/state"
)

// Controller is the single owner of the face's mutable state.
type Controller struct {
	Clock      *ClockState
	Selector   *Selector
	Strategy   Strategy
	Preference Preference
	TimeSource TimeSource
	Logger     logger.Logger

	// StartupVariant applies a variant in Startup as well as on every tick.
	StartupVariant bool

	effect Effect
	phase  state.Phase
}

func NewController(selector *Selector, strategy Strategy, pref Preference) *Controller {
	return &Controller{
		Clock:      NewClockState(),
		Selector:   selector,
		Strategy:   strategy,
		Preference: pref,
		TimeSource: SystemTime,
		Logger:     logger.NoopLogger{},
		effect:     strategy.Initial(),
		phase:      state.BOOTING,
	}
}

// FromConfig builds the controller for cfg's edition. caps is consulted
// only when the display mode is "auto".
func FromConfig(cfg config.Config, caps render.Capabilities, source Source) (*Controller, error) {
	selector, err := NewSelector(VariantCount, source)
	if err != nil {
		return nil, err
	}
	c := NewController(selector, StrategyFor(cfg, caps), PreferenceFor(cfg.ClockFormat))
	c.StartupVariant = cfg.Edition == config.EditionCaption
	return c, nil
}

// Startup fills the time label so the first frame is never blank.
func (c *Controller) Startup() {
	c.updateTime()
	if c.StartupVariant {
		c.updateVariant()
	}
	c.phase = state.RUNNING
}

// Tick runs once per elapsed minute: time first, then the variant.
func (c *Controller) Tick() {
	c.updateTime()
	c.updateVariant()
}

// Stop marks the face as torn down.
func (c *Controller) Stop() { c.phase = state.STOPPED }

func (c *Controller) updateTime() {
	text, changed := c.Clock.Update(c.TimeSource, c.Preference)
	if changed {
		c.Logger.Debugf("clock", "time now %s", text)
	}
}

func (c *Controller) updateVariant() {
	index := c.Selector.Next()
	c.effect = c.Strategy.Effect(index)
	c.Logger.Debugf("variant", "variant %d via %s strategy", index, c.Strategy.Name())
}

// Snapshot is the state handed to the renderer.
func (c *Controller) Snapshot() state.State {
	index, set := c.Selector.Current().Index()
	return state.State{
		Phase:        c.phase,
		Time:         c.Clock.Text(),
		TimeColor:    c.effect.TimeColor,
		Background:   c.effect.Background,
		Caption:      c.effect.Caption,
		CaptionColor: c.effect.CaptionColor,
		Variant:      state.Variant{Index: index, Set: set},
	}
}
