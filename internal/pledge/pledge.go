// Package pledge implements the five-day commitment checklist. Days are
// checked strictly in order and unchecked from the most recent one back.
package pledge

import (
	"slices"
	"strings"
	"time"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/normalize"
)

// Input carries the editable pledge fields. A nil Text keeps the current
// text.
type Input struct {
	Text                  *string
	SignatureName         string
	StartDate             string
	ImportantBecauseLines []string
	Reward                string
	Consequence           string
	EnsureActions         []string
}

// New creates a pledge from free text, as done at the end of onboarding.
func New(text, signature string, now time.Time) model.Pledge {
	ts := model.Timestamp(now)
	return model.Pledge{
		Text:          strings.TrimSpace(text),
		SignatureName: signature,
		StartDate:     ts,
		EnsureActions: []string{},
		CreatedAt:     ts,
		LastUpdatedAt: ts,
	}
}

// Apply writes in over current (which may be nil). The checklist and
// creation time of an existing pledge survive.
func Apply(current *model.Pledge, in Input, now time.Time) model.Pledge {
	ts := model.Timestamp(now)
	p := model.Pledge{
		SignatureName: strings.TrimSpace(in.SignatureName),
		StartDate:     in.StartDate,
		Reward:        strings.TrimSpace(in.Reward),
		Consequence:   strings.TrimSpace(in.Consequence),
		EnsureActions: normalize.EnsureActions(in.EnsureActions),
		CreatedAt:     ts,
		LastUpdatedAt: ts,
	}
	copy(p.ImportantBecauseLines[:], in.ImportantBecauseLines)
	if current != nil {
		p.Text = current.Text
		p.Checklist = current.Checklist
		p.CreatedAt = current.CreatedAt
	}
	if in.Text != nil {
		p.Text = strings.TrimSpace(*in.Text)
	}
	return p
}

func IsComplete(p *model.Pledge) bool {
	return p != nil && !slices.Contains(p.Checklist[:], false)
}

// DaysDone counts checked days.
func DaysDone(p model.Pledge) int {
	n := 0
	for _, done := range p.Checklist {
		if done {
			n++
		}
	}
	return n
}

// CanToggle reports whether flipping day keeps the checklist a prefix of
// checked days. A complete pledge is frozen.
func CanToggle(p model.Pledge, day int) bool {
	if day < 0 || day >= model.PledgeDays || IsComplete(&p) {
		return false
	}
	if p.Checklist[day] {
		return day == highestChecked(p)
	}
	return !slices.Contains(p.Checklist[:day], false)
}

func highestChecked(p model.Pledge) int {
	for i := len(p.Checklist) - 1; i >= 0; i-- {
		if p.Checklist[i] {
			return i
		}
	}
	return -1
}

// Toggle flips one day if the ordering rules allow it. ok is false when
// the pledge is returned unchanged.
func Toggle(p model.Pledge, day int, now time.Time) (model.Pledge, bool) {
	if !CanToggle(p, day) {
		return p, false
	}
	p.Checklist[day] = !p.Checklist[day]
	p.EnsureActions = slices.Clone(p.EnsureActions)
	p.LastUpdatedAt = model.Timestamp(now)
	return p, true
}

// Restart clears every checked day.
func Restart(p model.Pledge, now time.Time) model.Pledge {
	p.Checklist = [model.PledgeDays]bool{}
	p.EnsureActions = slices.Clone(p.EnsureActions)
	p.LastUpdatedAt = model.Timestamp(now)
	return p
}
