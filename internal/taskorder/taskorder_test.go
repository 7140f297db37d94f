package taskorder

import (
	"testing"

	"github.com/sadopc/planr/internal/model"
)

func tasks(done ...bool) []model.Task {
	out := make([]model.Task, model.TaskCount)
	for i := range out {
		out[i] = model.EmptyTask()
		if i < len(done) {
			out[i].Done = done[i]
		}
	}
	return out
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		tasks   []model.Task
		index   int
		enforce bool
		want    Interaction
	}{
		{"first task never blocked", tasks(), 0, true, Interaction{CanStart: true, CanMarkDone: true}},
		{"earlier open", tasks(false), 1, true, Interaction{Reason: ReasonBlocked}},
		{"earlier done", tasks(true), 1, true, Interaction{CanStart: true, CanMarkDone: true}},
		{"gap in the middle", tasks(true, false, true), 3, true, Interaction{Reason: ReasonBlocked}},
		{"enforcement off", tasks(), 4, false, Interaction{CanStart: true, CanMarkDone: true}},
		{"negative index", tasks(), -1, false, Interaction{Reason: ReasonInvalidIndex}},
		{"index past end", tasks(), model.TaskCount, true, Interaction{Reason: ReasonInvalidIndex}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Check(tt.tasks, tt.index, tt.enforce)
			if got != tt.want {
				t.Fatalf("Check(%d, %v) = %+v, want %+v", tt.index, tt.enforce, got, tt.want)
			}
		})
	}
}

func TestCheckAfterCompletingFirst(t *testing.T) {
	ts := tasks()
	if got := Check(ts, 1, true); got.CanStart {
		t.Fatal("expected task 1 blocked while task 0 is open")
	}
	ts[0].Done = true
	if got := Check(ts, 1, true); !got.CanStart || !got.CanMarkDone {
		t.Fatalf("expected task 1 allowed, got %+v", got)
	}
}

func TestBlockedShortSlice(t *testing.T) {
	if Blocked([]model.Task{{Done: true}}, 3, true) {
		t.Fatal("done prefix shorter than index should not block")
	}
}
