// Package timer delivers the once-per-minute tick the face redraws on.
package timer

import (
	"context"
	"time"
)

// Clock is the time the ticker schedules against.
type Clock interface {
	Now() time.Time
	NewTimer(d time.Duration) Timer
}

type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

type systemClock struct{}

func (systemClock) Now() time.Time                 { return time.Now() }
func (systemClock) NewTimer(d time.Duration) Timer { return systemTimer{time.NewTimer(d)} }

type systemTimer struct{ t *time.Timer }

func (t systemTimer) C() <-chan time.Time { return t.t.C }
func (t systemTimer) Stop() bool          { return t.t.Stop() }

// SystemClock is the host wall clock.
var SystemClock Clock = systemClock{}

// UntilNextMinute returns the wait from now to the next minute boundary,
// in (0, 1m].
func UntilNextMinute(now time.Time) time.Duration {
	next := now.Truncate(time.Minute).Add(time.Minute)
	return next.Sub(now)
}

// MinuteTicker sends on C at every wall-clock minute boundary, or every
// Period when Period is set. Late deliveries are not caught up: the next
// tick is scheduled from the time the previous one was received.
type MinuteTicker struct {
	Clock  Clock
	Period time.Duration

	c chan time.Time
}

func NewMinuteTicker(clock Clock, period time.Duration) *MinuteTicker {
	if clock == nil {
		clock = SystemClock
	}
	return &MinuteTicker{Clock: clock, Period: period, c: make(chan time.Time, 1)}
}

// C is the tick channel. It holds at most one pending tick; ticks that find
// it full are dropped.
func (t *MinuteTicker) C() <-chan time.Time { return t.c }

// Run schedules ticks until ctx is done.
func (t *MinuteTicker) Run(ctx context.Context) {
	for {
		timer := t.Clock.NewTimer(t.nextDelay(t.Clock.Now()))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case fired := <-timer.C():
			select {
			case t.c <- fired:
			default:
			}
		}
	}
}

func (t *MinuteTicker) nextDelay(now time.Time) time.Duration {
	if t.Period > 0 {
		return t.Period
	}
	return UntilNextMinute(now)
}
