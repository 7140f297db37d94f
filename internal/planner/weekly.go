package planner

import (
	"time"

	"github.com/sadopc/planr/internal/datekey"
	"github.com/sadopc/planr/internal/model"
)

// weekPlan resolves the plan of the week containing date. created is true
// when no plan was stored yet.
func weekPlan(d model.AppData, date string) (w model.WeeklyPlan, created bool, err error) {
	key, err := datekey.WeekKeyFor(date, d.Preferences.WeekStartsOn)
	if err != nil {
		return model.WeeklyPlan{}, false, err
	}
	if w, ok := d.Weekly[key]; ok {
		return w, false, nil
	}
	return model.NewWeeklyPlan(key), true, nil
}

// editWeek applies fn to the plan of the week containing date. date may
// be any day of the week.
func (p *Planner) editWeek(date string, fn func(w *model.WeeklyPlan)) bool {
	return p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) {
		w, _, err := weekPlan(d, date)
		if err != nil {
			return d, false
		}
		fn(&w)
		return d.WithWeeklyPlan(w), true
	})
}

// EnsureWeeklyPlan returns the plan of the week containing date, creating
// and saving it on first access. ok is false for an invalid date key.
func (p *Planner) EnsureWeeklyPlan(date string) (plan model.WeeklyPlan, ok bool) {
	p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) {
		w, created, err := weekPlan(d, date)
		if err != nil {
			return d, false
		}
		plan, ok = w, true
		if !created {
			return d, false
		}
		return d.WithWeeklyPlan(w), true
	})
	return plan, ok
}

func (p *Planner) SetWeeklyMostImportant(date string, index int, text string) bool {
	if index < 0 || index >= model.MostImportantCount {
		return false
	}
	return p.editWeek(date, func(w *model.WeeklyPlan) { w.MostImportant[index] = text })
}

func (p *Planner) SetWeeklySecondary(date string, index int, text string) bool {
	if index < 0 || index >= model.SecondaryCount {
		return false
	}
	return p.editWeek(date, func(w *model.WeeklyPlan) { w.Secondary[index] = text })
}

func (p *Planner) SetWeeklyAdditional(date string, index int, text string) bool {
	if index < 0 || index >= model.AdditionalCount {
		return false
	}
	return p.editWeek(date, func(w *model.WeeklyPlan) { w.Additional[index] = text })
}

func (p *Planner) SetWeeklyCommitment(date, text string) bool {
	return p.editWeek(date, func(w *model.WeeklyPlan) { w.Commitment = text })
}
