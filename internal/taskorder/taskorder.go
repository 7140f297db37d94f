// Package taskorder decides whether a task slot may be started or
// completed when tasks must be finished in rank order.
package taskorder

import "github.com/sadopc/planr/internal/model"

const (
	ReasonInvalidIndex = "Invalid task index"
	ReasonBlocked      = "Complete earlier tasks first"
)

// Interaction is the verdict for one task slot. Reason is empty when both
// actions are allowed.
type Interaction struct {
	CanStart    bool
	CanMarkDone bool
	Reason      string
}

// Blocked reports whether an earlier task is still open while enforcement
// is on. The first task is never blocked.
func Blocked(tasks []model.Task, index int, enforce bool) bool {
	if !enforce || index <= 0 {
		return false
	}
	for _, t := range tasks[:min(index, len(tasks))] {
		if !t.Done {
			return true
		}
	}
	return false
}

func Check(tasks []model.Task, index int, enforce bool) Interaction {
	if !model.ValidTaskIndex(index) {
		return Interaction{Reason: ReasonInvalidIndex}
	}
	if Blocked(tasks, index, enforce) {
		return Interaction{Reason: ReasonBlocked}
	}
	return Interaction{CanStart: true, CanMarkDone: true}
}
