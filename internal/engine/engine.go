// Package engine drives the timer outside the TUI: it ticks the planner
// once per interval while a session is running.
package engine

import (
	"context"
	"time"

	"github.com/sadopc/planr/internal/timer"
)

// Ticker is the part of the planner the driver needs.
type Ticker interface {
	Tick() timer.Event
	Running() bool
	SoundEnabled() bool
}

type Config struct {
	// Interval between ticks. Defaults to one second.
	Interval time.Duration
	// Cue plays the audible signal. Nil disables it.
	Cue func()
	// OnTick, if set, sees every tick's event including EventNone.
	OnTick func(timer.Event)
}

// Run ticks t until its timer stops running or ctx is done. Ticks are
// idempotent against the planner's absolute deadline, so a delayed or
// skipped interval only delays the display. It returns ctx.Err() when
// cancelled and nil when the timer left the running state.
func Run(ctx context.Context, t Ticker, cfg Config) error {
	interval := cfg.Interval
	if interval <= 0 {
		interval = time.Second
	}
	if !t.Running() {
		return nil
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			ev := t.Tick()
			if ev != timer.EventNone && cfg.Cue != nil && t.SoundEnabled() {
				cfg.Cue()
			}
			if cfg.OnTick != nil {
				cfg.OnTick(ev)
			}
			if !t.Running() {
				return nil
			}
		}
	}
}
