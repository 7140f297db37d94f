package planner

import (
	"time"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/timer"
)

func (p *Planner) OpenTimer() {
	p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) { return timer.Open(d), true })
}

func (p *Planner) CloseTimer() {
	p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) { return timer.Close(d), true })
}

// StartWork starts a work session, attached to ref when it is not nil.
// It reports whether the timer is now running; a rejection is explained
// in the timer's LastError.
func (p *Planner) StartWork(ref *model.TaskRef, s timer.Session) bool {
	var running bool
	p.update(func(d model.AppData, now time.Time) (model.AppData, bool) {
		d = timer.StartWork(d, ref, s, now)
		running = d.Timer.LastError == "" && d.Timer.Status == model.StatusRunning
		return d, true
	})
	return running
}

func (p *Planner) StartWorkOnTask(date string, index int, s timer.Session) bool {
	return p.StartWork(&model.TaskRef{Date: date, TaskIndex: index}, s)
}

// StartGenericWork starts a work session not tied to any task.
func (p *Planner) StartGenericWork(s timer.Session) bool {
	return p.StartWork(nil, s)
}

func (p *Planner) StartBreak(s timer.Session) {
	p.update(func(d model.AppData, now time.Time) (model.AppData, bool) {
		return timer.StartBreak(d, s, now), true
	})
}

func (p *Planner) Pause() bool {
	return p.update(func(d model.AppData, now time.Time) (model.AppData, bool) {
		if d.Timer.Status != model.StatusRunning {
			return d, false
		}
		return timer.Pause(d, now), true
	})
}

func (p *Planner) Resume() bool {
	return p.update(func(d model.AppData, now time.Time) (model.AppData, bool) {
		if d.Timer.Status != model.StatusPaused {
			return d, false
		}
		return timer.Resume(d, now), true
	})
}

func (p *Planner) ResetTimer() {
	p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) { return timer.Reset(d), true })
}

// Tick advances a running timer. Countdown-only ticks update the snapshot
// without saving, since the remaining time is rebuilt from the stored
// deadline on load; phase changes are saved.
func (p *Planner) Tick() timer.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	next, ev := timer.Tick(p.data, p.now())
	p.data = next
	if ev != timer.EventNone {
		p.save()
	}
	return ev
}

// Running reports whether the timer is counting down.
func (p *Planner) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Timer.Status == model.StatusRunning
}

// SoundEnabled reports the audible-cue preference.
func (p *Planner) SoundEnabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.data.Preferences.SoundEnabled
}
