package planner

import (
	"time"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/pledge"
)

// SetPledge creates the pledge or updates the existing one, keeping its
// checklist and creation time.
func (p *Planner) SetPledge(in pledge.Input) {
	p.update(func(d model.AppData, now time.Time) (model.AppData, bool) {
		pl := pledge.Apply(d.Pledge, in, now)
		d.Pledge = &pl
		return d, true
	})
}

// TogglePledgeDay flips one checklist day when the ordering rules allow.
func (p *Planner) TogglePledgeDay(day int) bool {
	return p.update(func(d model.AppData, now time.Time) (model.AppData, bool) {
		if d.Pledge == nil {
			return d, false
		}
		pl, ok := pledge.Toggle(*d.Pledge, day, now)
		if !ok {
			return d, false
		}
		d.Pledge = &pl
		return d, true
	})
}

// RestartPledge clears the checklist, unfreezing a completed pledge.
func (p *Planner) RestartPledge() bool {
	return p.update(func(d model.AppData, now time.Time) (model.AppData, bool) {
		if d.Pledge == nil {
			return d, false
		}
		pl := pledge.Restart(*d.Pledge, now)
		d.Pledge = &pl
		return d, true
	})
}

// DeletePledge removes the pledge entirely.
func (p *Planner) DeletePledge() bool {
	return p.update(func(d model.AppData, _ time.Time) (model.AppData, bool) {
		if d.Pledge == nil {
			return d, false
		}
		d.Pledge = nil
		return d, true
	})
}
