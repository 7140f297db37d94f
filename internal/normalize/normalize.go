// Package normalize turns partial or legacy records into well-formed
// planner state. Every function here is idempotent.
package normalize

import (
	"math"
	"time"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/schema"
)

// AppData produces a complete snapshot from doc. now is used to recompute a
// running timer against its stored deadline.
func AppData(doc schema.Document, now time.Time) model.AppData {
	prefs := Preferences(doc.Preferences)
	out := model.AppData{
		SchemaVersion: model.SchemaVersion,
		Preferences:   prefs,
		Onboarding:    onboarding(doc.Onboarding),
		Daily:         make(map[string]model.DailyEntry, len(doc.Daily)),
		Weekly:        make(map[string]model.WeeklyPlan, len(doc.Weekly)),
		Timer:         Timer(doc.Timer, prefs, now),
	}
	for date, e := range doc.Daily {
		out.Daily[date] = DailyEntry(e, date)
	}
	for weekStart, p := range doc.Weekly {
		out.Weekly[weekStart] = WeeklyPlan(p, weekStart)
	}
	if doc.Pledge != nil {
		p := Pledge(*doc.Pledge)
		out.Pledge = &p
	}
	if doc.LastImportedAt != nil {
		out.LastImportedAt = *doc.LastImportedAt
	}
	return out
}

// Theme resolves legacy aliases; unknown values fall back to the default.
func Theme(s string) model.Theme {
	switch model.Theme(s) {
	case model.ThemeNocturne, model.ThemeLegacyMidnight:
		return model.ThemeNocturne
	default:
		return model.ThemeLaduree
	}
}

func WeekStart(s string) model.WeekStart {
	if model.WeekStart(s) == model.WeekStartSunday {
		return model.WeekStartSunday
	}
	return model.WeekStartMonday
}

func Preferences(doc *schema.PreferencesDoc) model.Preferences {
	p := model.DefaultPreferences()
	if doc == nil {
		return p
	}
	if doc.Theme != nil {
		p.Theme = Theme(*doc.Theme)
	}
	if doc.WeekStartsOn != nil {
		p.WeekStartsOn = WeekStart(*doc.WeekStartsOn)
	}
	if v := doc.PomodoroMinutes; v != nil && *v > 0 {
		p.PomodoroMinutes = clampRound(*v, model.MinWorkMinutes, model.MaxWorkMinutes)
	}
	if v := doc.BreakMinutes; v != nil && *v > 0 {
		p.BreakMinutes = clampRound(*v, model.MinBreakMinutes, model.MaxBreakMinutes)
	}
	if doc.EnforceTaskOrder != nil {
		p.EnforceTaskOrder = *doc.EnforceTaskOrder
	}
	if doc.SoundEnabled != nil {
		p.SoundEnabled = *doc.SoundEnabled
	}
	return p
}

func onboarding(doc *schema.OnboardingDoc) model.Onboarding {
	var o model.Onboarding
	if doc == nil {
		return o
	}
	o.Name = str(doc.Name)
	o.OnboardingCompleted = doc.OnboardingCompleted != nil && *doc.OnboardingCompleted
	if doc.PledgeDraft != nil {
		draft := *doc.PledgeDraft
		o.PledgeDraft = &draft
	}
	return o
}

// Task fills defaults and floors counters: target is at least 1, actual at
// least 0.
func Task(doc schema.TaskDoc) model.Task {
	t := model.EmptyTask()
	t.Text = str(doc.Text)
	if doc.TargetPomodoros != nil && *doc.TargetPomodoros > 0 {
		t.TargetPomodoros = clampRound(*doc.TargetPomodoros, 1, maxCount)
	}
	if doc.ActualPomodoros != nil {
		t.ActualPomodoros = clampRound(*doc.ActualPomodoros, 0, maxCount)
	}
	t.Done = doc.Done != nil && *doc.Done
	return t
}

// Tasks truncates or pads docs to exactly model.TaskCount tasks.
func Tasks(docs []schema.TaskDoc) [model.TaskCount]model.Task {
	var tasks [model.TaskCount]model.Task
	for i := range tasks {
		if i < len(docs) {
			tasks[i] = Task(docs[i])
		} else {
			tasks[i] = model.EmptyTask()
		}
	}
	return tasks
}

// DailyEntry normalizes an existing entry. The map key wins over the stored
// date. A missing or null score stays null; a numeric one is clamped.
func DailyEntry(doc schema.DailyEntryDoc, date string) model.DailyEntry {
	e := model.DailyEntry{
		Date:                   date,
		Tasks:                  Tasks(doc.Tasks),
		Notes:                  str(doc.Notes),
		ProductivityReflection: str(doc.ProductivityReflection),
	}
	if doc.ProductivityScore != nil {
		score := Score(*doc.ProductivityScore)
		e.ProductivityScore = &score
	}
	return e
}

// Score rounds and clamps a productivity score into [1, 10].
func Score(v float64) int {
	return clampRound(v, 1, 10)
}

func WeeklyPlan(doc schema.WeeklyPlanDoc, weekStart string) model.WeeklyPlan {
	p := model.NewWeeklyPlan(weekStart)
	copy(p.MostImportant[:], doc.MostImportant)
	copy(p.Secondary[:], doc.Secondary)
	copy(p.Additional[:], doc.Additional)
	p.Commitment = str(doc.Commitment)
	return p
}

func Pledge(doc schema.PledgeDoc) model.Pledge {
	p := model.Pledge{
		Text:          str(doc.Text),
		SignatureName: str(doc.SignatureName),
		StartDate:     str(doc.StartDate),
		Reward:        str(doc.Reward),
		Consequence:   str(doc.Consequence),
		EnsureActions: EnsureActions(doc.EnsureActions),
		CreatedAt:     str(doc.CreatedAt),
		LastUpdatedAt: str(doc.LastUpdatedAt),
	}
	copy(p.ImportantBecauseLines[:], doc.ImportantBecauseLines)
	copy(p.Checklist[:], doc.Checklist)
	return p
}

// EnsureActions caps the action list at model.MaxEnsureActions. The result
// is never nil.
func EnsureActions(actions []string) []string {
	out := make([]string, 0, min(len(actions), model.MaxEnsureActions))
	for i, a := range actions {
		if i == model.MaxEnsureActions {
			break
		}
		out = append(out, a)
	}
	return out
}

// Timer rebuilds timer state. A running timer always has a deadline and its
// remaining time is recomputed from it; other states never keep one.
func Timer(doc *schema.TimerDoc, prefs model.Preferences, now time.Time) model.TimerState {
	t := model.IdleTimer(prefs)
	if doc == nil {
		return t
	}
	if doc.Phase != nil && model.TimerPhase(*doc.Phase) == model.PhaseBreak {
		t.Phase = model.PhaseBreak
	}
	if doc.Status != nil {
		switch s := model.TimerStatus(*doc.Status); s {
		case model.StatusRunning, model.StatusPaused:
			t.Status = s
		}
	}
	if v, ok := positiveInt(doc.WorkDurationSeconds); ok {
		t.WorkDurationSeconds = v
	}
	if v, ok := positiveInt(doc.BreakDurationSeconds); ok {
		t.BreakDurationSeconds = v
	}
	phaseSeconds := t.WorkDurationSeconds
	if t.Phase == model.PhaseBreak {
		phaseSeconds = t.BreakDurationSeconds
	}
	t.SecondsLeft = phaseSeconds
	if doc.SecondsLeft != nil && *doc.SecondsLeft >= 0 {
		t.SecondsLeft = clampRound(*doc.SecondsLeft, 0, maxCount)
	}

	if t.Status == model.StatusRunning {
		var endsAt int64
		if doc.EndsAt != nil && *doc.EndsAt > 0 {
			endsAt = int64(min(*doc.EndsAt, maxEndsAt))
		} else {
			remaining := t.SecondsLeft
			if remaining == 0 {
				remaining = phaseSeconds
			}
			endsAt = now.UnixMilli() + int64(remaining)*1000
		}
		t.EndsAt = &endsAt
		t.SecondsLeft = RemainingSeconds(endsAt, now)
	}

	if ref := doc.ActiveTaskRef; ref != nil && ref.TaskIndex != nil {
		idx := *ref.TaskIndex
		if idx == math.Trunc(idx) && model.ValidTaskIndex(int(idx)) {
			t.ActiveTaskRef = &model.TaskRef{Date: str(ref.Date), TaskIndex: int(idx)}
		}
	}
	t.UIOpen = doc.UIOpen != nil && *doc.UIOpen
	t.LastError = str(doc.LastError)
	return t
}

// RemainingSeconds is the whole seconds left until endsAt (unix ms),
// rounded up and floored at zero.
func RemainingSeconds(endsAt int64, now time.Time) int {
	ms := endsAt - now.UnixMilli()
	if ms <= 0 {
		return 0
	}
	return int(min((ms+999)/1000, maxCount))
}

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// Stored counters and durations stay within maxCount so they convert to
// int exactly and validate again after a save. Deadlines stay within the
// integers a float64 holds exactly.
const (
	maxCount  = math.MaxInt32
	maxEndsAt = 1 << 53
)

// clampRound bounds f to [lo, hi] before rounding it.
func clampRound(f float64, lo, hi int) int {
	return round(min(float64(hi), max(float64(lo), f)))
}

// round rounds halves up: 2.5 becomes 3, -2.5 becomes -2.
func round(f float64) int {
	return int(math.Floor(f + 0.5))
}

func positiveInt(f *float64) (int, bool) {
	if f == nil || *f <= 0 {
		return 0, false
	}
	return clampRound(*f, 1, maxCount), true
}
