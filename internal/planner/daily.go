package planner

import (
	"time"

	"github.com/sadopc/planr/internal/datekey"
	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/normalize"
	"github.com/sadopc/planr/internal/taskorder"
)

// editEntry applies fn to the entry for date, creating it first if needed.
// Invalid date keys are rejected.
func (p *Planner) editEntry(date string, fn func(e *model.DailyEntry, d model.AppData) bool) bool {
	if !datekey.Valid(date) {
		return false
	}
	return p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) {
		e, _ := d.Entry(date)
		if !fn(&e, d) {
			return d, false
		}
		return d.WithEntry(e), true
	})
}

func (p *Planner) editTask(date string, index int, fn func(t *model.Task)) bool {
	if !model.ValidTaskIndex(index) {
		return false
	}
	return p.editEntry(date, func(e *model.DailyEntry, _ model.AppData) bool {
		fn(&e.Tasks[index])
		return true
	})
}

// EnsureDailyEntry returns the entry for date, creating and saving it on
// first access. ok is false for an invalid date key.
func (p *Planner) EnsureDailyEntry(date string) (model.DailyEntry, bool) {
	if !datekey.Valid(date) {
		return model.DailyEntry{}, false
	}
	var out model.DailyEntry
	p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) {
		e, existed := d.Entry(date)
		out = e
		if existed {
			return d, false
		}
		return d.WithEntry(e), true
	})
	return out, true
}

func (p *Planner) SetTaskText(date string, index int, text string) bool {
	return p.editTask(date, index, func(t *model.Task) { t.Text = text })
}

// SetTaskTarget sets the target pomodoro count. nil resets it to 1.
func (p *Planner) SetTaskTarget(date string, index int, target *int) bool {
	return p.editTask(date, index, func(t *model.Task) {
		t.TargetPomodoros = 1
		if target != nil {
			t.TargetPomodoros = max(1, *target)
		}
	})
}

// SetTaskDone marks a task done or not. Marking done is refused while an
// earlier task is open and task order is enforced; clearing is always
// allowed.
func (p *Planner) SetTaskDone(date string, index int, done bool) bool {
	if !model.ValidTaskIndex(index) {
		return false
	}
	return p.editEntry(date, func(e *model.DailyEntry, d model.AppData) bool {
		if done && taskorder.Blocked(e.Tasks[:], index, d.Preferences.EnforceTaskOrder) {
			return false
		}
		e.Tasks[index].Done = done
		return true
	})
}

func (p *Planner) IncrementTaskPomodoro(date string, index int) bool {
	return p.editTask(date, index, func(t *model.Task) {
		t.ActualPomodoros = max(0, t.ActualPomodoros) + 1
	})
}

func (p *Planner) DecrementTaskPomodoro(date string, index int) bool {
	return p.editTask(date, index, func(t *model.Task) {
		t.ActualPomodoros = max(0, t.ActualPomodoros-1)
	})
}

func (p *Planner) SetTaskPomodorosActual(date string, index int, actual int) bool {
	return p.editTask(date, index, func(t *model.Task) { t.ActualPomodoros = max(0, actual) })
}

func (p *Planner) SetNotes(date, text string) bool {
	return p.editEntry(date, func(e *model.DailyEntry, _ model.AppData) bool {
		e.Notes = text
		return true
	})
}

// SetProductivityScore stores a score clamped to [1, 10], or clears it.
func (p *Planner) SetProductivityScore(date string, score *int) bool {
	return p.editEntry(date, func(e *model.DailyEntry, _ model.AppData) bool {
		e.ProductivityScore = nil
		if score != nil {
			s := normalize.Score(float64(*score))
			e.ProductivityScore = &s
		}
		return true
	})
}

func (p *Planner) SetProductivityReflection(date, text string) bool {
	return p.editEntry(date, func(e *model.DailyEntry, _ model.AppData) bool {
		e.ProductivityReflection = text
		return true
	})
}

// CanInteractWithTask reports whether the task may be started or completed
// right now. It never changes state.
func (p *Planner) CanInteractWithTask(date string, index int) taskorder.Interaction {
	p.mu.Lock()
	defer p.mu.Unlock()
	e, _ := p.data.Entry(date)
	return taskorder.Check(e.Tasks[:], index, p.data.Preferences.EnforceTaskOrder)
}
