// Package timer holds the pomodoro state machine. Every transition is a
// pure function from one snapshot to the next; callers pass the current
// time explicitly.
package timer

import (
	"fmt"
	"math"
	"time"

	"github.com/sadopc/planr/internal/datekey"
	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/normalize"
	"github.com/sadopc/planr/internal/taskorder"
)

// Session overrides the preference durations for one work session.
type Session struct {
	WorkMinutes  *int
	BreakMinutes *int
}

const (
	MinWorkMinutes  = model.MinWorkMinutes
	MaxWorkMinutes  = model.MaxWorkMinutes
	MinBreakMinutes = model.MinBreakMinutes
	MaxBreakMinutes = model.MaxBreakMinutes
)

// ReasonInvalidDate rejects a work session on a malformed date key.
const ReasonInvalidDate = "Invalid date"

// Event reports what a Tick did.
type Event int

const (
	EventNone Event = iota
	EventWorkComplete
	EventBreakComplete
)

func (e Event) String() string {
	switch e {
	case EventWorkComplete:
		return "work complete"
	case EventBreakComplete:
		return "break complete"
	default:
		return "none"
	}
}

// SecondsLeft is the live countdown: derived from the deadline while
// running, the stored value otherwise.
func SecondsLeft(t model.TimerState, now time.Time) int {
	if t.Status == model.StatusRunning && t.EndsAt != nil {
		return normalize.RemainingSeconds(*t.EndsAt, now)
	}
	return max(0, t.SecondsLeft)
}

func deadline(now time.Time, seconds int) *int64 {
	ms := now.UnixMilli() + int64(seconds)*1000
	return &ms
}

func clampMinutes(minutes *int, fallbackSeconds, lo, hi int) int {
	if minutes == nil {
		return fallbackSeconds
	}
	return min(hi*60, max(lo*60, *minutes*60))
}

func workSeconds(d model.AppData) int {
	if d.Timer.WorkDurationSeconds > 0 {
		return d.Timer.WorkDurationSeconds
	}
	return d.Preferences.PomodoroMinutes * 60
}

func breakSeconds(d model.AppData) int {
	if d.Timer.BreakDurationSeconds > 0 {
		return d.Timer.BreakDurationSeconds
	}
	return d.Preferences.BreakMinutes * 60
}

// StartWork begins a work interval, optionally attached to a task. A bad
// date, a bad index or a task-order violation leaves the timer as is and records the
// reason in LastError.
func StartWork(d model.AppData, ref *model.TaskRef, s Session, now time.Time) model.AppData {
	if ref != nil {
		if !datekey.Valid(ref.Date) {
			d.Timer.LastError = ReasonInvalidDate
			return d
		}
		if !model.ValidTaskIndex(ref.TaskIndex) {
			d.Timer.LastError = taskorder.ReasonInvalidIndex
			return d
		}
		entry, _ := d.Entry(ref.Date)
		if in := taskorder.Check(entry.Tasks[:], ref.TaskIndex, d.Preferences.EnforceTaskOrder); !in.CanStart {
			d.Timer.LastError = in.Reason
			return d
		}
		d = d.WithEntry(entry)
	}

	work := clampMinutes(s.WorkMinutes, d.Preferences.PomodoroMinutes*60, MinWorkMinutes, MaxWorkMinutes)
	brk := clampMinutes(s.BreakMinutes, d.Preferences.BreakMinutes*60, MinBreakMinutes, MaxBreakMinutes)

	t := d.Timer
	t.Status = model.StatusRunning
	t.Phase = model.PhaseWork
	t.SecondsLeft = work
	t.EndsAt = deadline(now, work)
	t.WorkDurationSeconds = work
	t.BreakDurationSeconds = brk
	t.ActiveTaskRef = nil
	if ref != nil {
		r := *ref
		t.ActiveTaskRef = &r
	}
	t.UIOpen = true
	t.LastError = ""
	d.Timer = t
	return d
}

// StartBreak begins a break from any state. The recorded work duration and
// task reference are kept.
func StartBreak(d model.AppData, s Session, now time.Time) model.AppData {
	brk := clampMinutes(s.BreakMinutes, breakSeconds(d), MinBreakMinutes, MaxBreakMinutes)

	t := d.Timer
	t.WorkDurationSeconds = workSeconds(d)
	t.BreakDurationSeconds = brk
	t.Status = model.StatusRunning
	t.Phase = model.PhaseBreak
	t.SecondsLeft = brk
	t.EndsAt = deadline(now, brk)
	t.LastError = ""
	d.Timer = t
	return d
}

// Pause freezes a running timer. Other states are returned unchanged.
func Pause(d model.AppData, now time.Time) model.AppData {
	if d.Timer.Status != model.StatusRunning {
		return d
	}
	d.Timer.SecondsLeft = SecondsLeft(d.Timer, now)
	d.Timer.EndsAt = nil
	d.Timer.Status = model.StatusPaused
	return d
}

// Resume restarts a paused timer from its frozen remainder. A timer paused
// at zero goes back to idle instead.
func Resume(d model.AppData, now time.Time) model.AppData {
	if d.Timer.Status != model.StatusPaused {
		return d
	}
	left := max(0, d.Timer.SecondsLeft)
	if left == 0 {
		return Reset(d)
	}
	d.Timer.Status = model.StatusRunning
	d.Timer.SecondsLeft = left
	d.Timer.EndsAt = deadline(now, left)
	d.Timer.LastError = ""
	return d
}

// Reset returns to an idle work phase sized by the preferences.
func Reset(d model.AppData) model.AppData {
	idle := model.IdleTimer(d.Preferences)
	idle.UIOpen = d.Timer.UIOpen
	d.Timer = idle
	return d
}

// Tick advances a running timer. When the current phase has run out it
// performs the phase transition and reports it.
func Tick(d model.AppData, now time.Time) (model.AppData, Event) {
	if d.Timer.Status != model.StatusRunning {
		return d, EventNone
	}
	if left := SecondsLeft(d.Timer, now); left > 0 {
		d.Timer.SecondsLeft = left
		return d, EventNone
	}

	work, brk := workSeconds(d), breakSeconds(d)
	t := d.Timer
	t.WorkDurationSeconds = work
	t.BreakDurationSeconds = brk
	t.LastError = ""

	if t.Phase == model.PhaseWork {
		if ref := t.ActiveTaskRef; ref != nil && model.ValidTaskIndex(ref.TaskIndex) {
			entry, _ := d.Entry(ref.Date)
			entry.Tasks[ref.TaskIndex].ActualPomodoros = max(0, entry.Tasks[ref.TaskIndex].ActualPomodoros) + 1
			d = d.WithEntry(entry)
		}
		t.Phase = model.PhaseBreak
		t.SecondsLeft = brk
		t.EndsAt = deadline(now, brk)
		d.Timer = t
		return d, EventWorkComplete
	}

	t.Phase = model.PhaseWork
	t.Status = model.StatusIdle
	t.SecondsLeft = work
	t.EndsAt = nil
	d.Timer = t
	return d, EventBreakComplete
}

func Open(d model.AppData) model.AppData {
	d.Timer.UIOpen = true
	return d
}

func Close(d model.AppData) model.AppData {
	d.Timer.UIOpen = false
	return d
}

// ApplyPreferences resizes an idle timer to the current preferences. A
// running or paused timer is left alone.
func ApplyPreferences(d model.AppData) model.AppData {
	if d.Timer.Status != model.StatusIdle {
		return d
	}
	d.Timer.WorkDurationSeconds = d.Preferences.PomodoroMinutes * 60
	d.Timer.BreakDurationSeconds = d.Preferences.BreakMinutes * 60
	d.Timer.SecondsLeft = d.Timer.WorkDurationSeconds
	if d.Timer.Phase == model.PhaseBreak {
		d.Timer.SecondsLeft = d.Timer.BreakDurationSeconds
	}
	return d
}

// Progress is the elapsed fraction of the current phase in [0, 1].
func Progress(t model.TimerState, now time.Time) float64 {
	total := t.WorkDurationSeconds
	if t.Phase == model.PhaseBreak {
		total = t.BreakDurationSeconds
	}
	if total <= 0 {
		return 0
	}
	elapsed := float64(total-SecondsLeft(t, now)) / float64(total)
	return math.Min(1, math.Max(0, elapsed))
}

// Format renders seconds as MM:SS.
func Format(seconds int) string {
	seconds = max(0, seconds)
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
