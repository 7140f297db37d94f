package planner

import (
	"strings"
	"time"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/normalize"
	"github.com/sadopc/planr/internal/pledge"
	"github.com/sadopc/planr/internal/timer"
)

func (p *Planner) SetName(name string) {
	p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) {
		d.Onboarding.Name = name
		return d, true
	})
}

func (p *Planner) SetPledgeDraft(text string) {
	p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) {
		d.Onboarding.PledgeDraft = &text
		return d, true
	})
}

// CompleteOnboarding marks onboarding done and clears the draft. A pledge is
// created from pledgeText, or from the draft when pledgeText is nil, unless
// the text is blank.
func (p *Planner) CompleteOnboarding(pledgeText *string) {
	p.update(func(d model.AppData, now time.Time) (model.AppData, bool) {
		text := pledgeText
		if text == nil {
			text = d.Onboarding.PledgeDraft
		}
		d.Onboarding.OnboardingCompleted = true
		d.Onboarding.PledgeDraft = nil
		if text != nil && strings.TrimSpace(*text) != "" {
			pl := pledge.New(*text, d.Onboarding.Name, now)
			d.Pledge = &pl
		}
		return d, true
	})
}

// PreferencesPatch holds the preference fields to change; nil fields are
// left alone.
type PreferencesPatch struct {
	Theme            *model.Theme
	WeekStartsOn     *model.WeekStart
	PomodoroMinutes  *int
	BreakMinutes     *int
	EnforceTaskOrder *bool
	SoundEnabled     *bool
}

// UpdatePreferences merges patch into the preferences. Minutes are clamped
// to the ranges the timer accepts. An idle timer is resized to match.
func (p *Planner) UpdatePreferences(patch PreferencesPatch) {
	p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) {
		prefs := d.Preferences
		if patch.Theme != nil {
			prefs.Theme = normalize.Theme(string(*patch.Theme))
		}
		if patch.WeekStartsOn != nil {
			prefs.WeekStartsOn = normalize.WeekStart(string(*patch.WeekStartsOn))
		}
		if patch.PomodoroMinutes != nil {
			prefs.PomodoroMinutes = min(timer.MaxWorkMinutes, max(timer.MinWorkMinutes, *patch.PomodoroMinutes))
		}
		if patch.BreakMinutes != nil {
			prefs.BreakMinutes = min(timer.MaxBreakMinutes, max(timer.MinBreakMinutes, *patch.BreakMinutes))
		}
		if patch.EnforceTaskOrder != nil {
			prefs.EnforceTaskOrder = *patch.EnforceTaskOrder
		}
		if patch.SoundEnabled != nil {
			prefs.SoundEnabled = *patch.SoundEnabled
		}
		d.Preferences = prefs
		return timer.ApplyPreferences(d), true
	})
}
