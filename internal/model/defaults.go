package model

import (
	"maps"
	"slices"
)

func DefaultPreferences() Preferences {
	return Preferences{
		Theme:            ThemeLaduree,
		WeekStartsOn:     WeekStartMonday,
		PomodoroMinutes:  25,
		BreakMinutes:     5,
		EnforceTaskOrder: true,
		SoundEnabled:     true,
	}
}

// IdleTimer is the resting timer for the given preferences.
func IdleTimer(p Preferences) TimerState {
	return TimerState{
		Status:               StatusIdle,
		Phase:                PhaseWork,
		SecondsLeft:          p.PomodoroMinutes * 60,
		WorkDurationSeconds:  p.PomodoroMinutes * 60,
		BreakDurationSeconds: p.BreakMinutes * 60,
	}
}

func EmptyTask() Task {
	return Task{TargetPomodoros: 1}
}

// NewDailyEntry builds the entry created on first access to a date.
func NewDailyEntry(date string) DailyEntry {
	score := 5
	e := DailyEntry{Date: date, ProductivityScore: &score}
	for i := range e.Tasks {
		e.Tasks[i] = EmptyTask()
	}
	return e
}

func NewWeeklyPlan(weekStart string) WeeklyPlan {
	return WeeklyPlan{WeekStart: weekStart}
}

func NewAppData() AppData {
	prefs := DefaultPreferences()
	return AppData{
		SchemaVersion: SchemaVersion,
		Preferences:   prefs,
		Daily:         map[string]DailyEntry{},
		Weekly:        map[string]WeeklyPlan{},
		Timer:         IdleTimer(prefs),
	}
}

// ValidTaskIndex reports whether i addresses one of the fixed task slots.
func ValidTaskIndex(i int) bool {
	return i >= 0 && i < TaskCount
}

// Entry returns the stored entry for date, or a fresh one if none exists yet.
func (d AppData) Entry(date string) (DailyEntry, bool) {
	if e, ok := d.Daily[date]; ok {
		return e, true
	}
	return NewDailyEntry(date), false
}

// WithEntry returns a copy of d whose daily map holds e. The receiver's map
// is left untouched so earlier snapshots stay valid.
func (d AppData) WithEntry(e DailyEntry) AppData {
	daily := maps.Clone(d.Daily)
	if daily == nil {
		daily = map[string]DailyEntry{}
	}
	daily[e.Date] = e
	d.Daily = daily
	return d
}

func (d AppData) WithWeeklyPlan(p WeeklyPlan) AppData {
	weekly := maps.Clone(d.Weekly)
	if weekly == nil {
		weekly = map[string]WeeklyPlan{}
	}
	weekly[p.WeekStart] = p
	d.Weekly = weekly
	return d
}

// Clone returns a deep copy suitable for handing to consumers.
func (d AppData) Clone() AppData {
	d.Daily = maps.Clone(d.Daily)
	d.Weekly = maps.Clone(d.Weekly)
	for k, e := range d.Daily {
		if e.ProductivityScore != nil {
			s := *e.ProductivityScore
			e.ProductivityScore = &s
			d.Daily[k] = e
		}
	}
	if d.Pledge != nil {
		p := *d.Pledge
		p.EnsureActions = slices.Clone(p.EnsureActions)
		d.Pledge = &p
	}
	if d.Onboarding.PledgeDraft != nil {
		s := *d.Onboarding.PledgeDraft
		d.Onboarding.PledgeDraft = &s
	}
	if d.Timer.EndsAt != nil {
		v := *d.Timer.EndsAt
		d.Timer.EndsAt = &v
	}
	if d.Timer.ActiveTaskRef != nil {
		r := *d.Timer.ActiveTaskRef
		d.Timer.ActiveTaskRef = &r
	}
	return d
}
