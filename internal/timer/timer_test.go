package timer

import (
	"testing"
	"time"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/taskorder"
)

var start = time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)

func minutes(n int) *int { return &n }

func ref(date string, i int) *model.TaskRef {
	return &model.TaskRef{Date: date, TaskIndex: i}
}

// run ticks once per second from the given offset until the phase ends,
// returning the final state, the elapsed seconds and the event.
func run(t *testing.T, d model.AppData, from time.Time, limit int) (model.AppData, int, Event) {
	t.Helper()
	for s := 1; s <= limit; s++ {
		var ev Event
		d, ev = Tick(d, from.Add(time.Duration(s)*time.Second))
		if ev != EventNone {
			return d, s, ev
		}
	}
	t.Fatalf("no transition within %d ticks", limit)
	return d, 0, EventNone
}

// ==================== StartWork ====================

func TestStartWorkOnTask(t *testing.T) {
	d := StartWork(model.NewAppData(), ref("2024-01-01", 0), Session{WorkMinutes: minutes(5), BreakMinutes: minutes(1)}, start)

	tm := d.Timer
	if tm.Status != model.StatusRunning || tm.Phase != model.PhaseWork {
		t.Fatalf("expected running/work, got %s/%s", tm.Status, tm.Phase)
	}
	if tm.SecondsLeft != 300 || tm.WorkDurationSeconds != 300 || tm.BreakDurationSeconds != 60 {
		t.Fatalf("unexpected durations: %+v", tm)
	}
	if tm.EndsAt == nil || *tm.EndsAt != start.UnixMilli()+300_000 {
		t.Fatalf("unexpected deadline: %v", tm.EndsAt)
	}
	if !tm.UIOpen || tm.ActiveTaskRef == nil || tm.ActiveTaskRef.TaskIndex != 0 {
		t.Fatalf("expected open timer attached to task 0, got %+v", tm)
	}
	if _, ok := d.Daily["2024-01-01"]; !ok {
		t.Fatal("expected daily entry to be created")
	}
}

func TestStartWorkClampsSession(t *testing.T) {
	d := StartWork(model.NewAppData(), nil, Session{WorkMinutes: minutes(120), BreakMinutes: minutes(0)}, start)
	if d.Timer.WorkDurationSeconds != 3600 || d.Timer.BreakDurationSeconds != 60 {
		t.Fatalf("expected 3600/60, got %d/%d", d.Timer.WorkDurationSeconds, d.Timer.BreakDurationSeconds)
	}
	d = StartWork(model.NewAppData(), nil, Session{WorkMinutes: minutes(1), BreakMinutes: minutes(45)}, start)
	if d.Timer.WorkDurationSeconds != 300 || d.Timer.BreakDurationSeconds != 1800 {
		t.Fatalf("expected 300/1800, got %d/%d", d.Timer.WorkDurationSeconds, d.Timer.BreakDurationSeconds)
	}
	if d.Timer.ActiveTaskRef != nil {
		t.Fatal("generic work should not attach a task")
	}
}

func TestStartWorkRejections(t *testing.T) {
	d := StartWork(model.NewAppData(), ref("2024-01-01", 9), Session{}, start)
	if d.Timer.Status != model.StatusIdle || d.Timer.LastError != taskorder.ReasonInvalidIndex {
		t.Fatalf("expected idle with invalid index error, got %+v", d.Timer)
	}

	d = StartWork(model.NewAppData(), ref("2024-01-01", 2), Session{}, start)
	if d.Timer.Status != model.StatusIdle || d.Timer.LastError != taskorder.ReasonBlocked {
		t.Fatalf("expected idle with blocked error, got %+v", d.Timer)
	}
	if len(d.Daily) != 0 {
		t.Fatal("rejected start should not create an entry")
	}

	d = StartWork(model.NewAppData(), ref("2024-02-30", 0), Session{}, start)
	if d.Timer.Status != model.StatusIdle || d.Timer.LastError != ReasonInvalidDate {
		t.Fatalf("expected idle with invalid date error, got %+v", d.Timer)
	}
	if len(d.Daily) != 0 {
		t.Fatal("bad date should not create an entry")
	}

	d = StartWork(d, nil, Session{}, start)
	if d.Timer.LastError != "" {
		t.Fatalf("successful start should clear error, got %q", d.Timer.LastError)
	}
}

// ==================== Tick ====================

func TestWorkSessionRoundTrip(t *testing.T) {
	d := StartWork(model.NewAppData(), ref("2024-01-01", 0), Session{WorkMinutes: minutes(5), BreakMinutes: minutes(1)}, start)

	d, elapsed, ev := run(t, d, start, 400)
	if elapsed != 300 || ev != EventWorkComplete {
		t.Fatalf("expected work complete after 300s, got %v after %ds", ev, elapsed)
	}
	if d.Timer.Phase != model.PhaseBreak || d.Timer.Status != model.StatusRunning || d.Timer.SecondsLeft != 60 {
		t.Fatalf("expected running break with 60s, got %+v", d.Timer)
	}
	if got := d.Daily["2024-01-01"].Tasks[0].ActualPomodoros; got != 1 {
		t.Fatalf("expected 1 actual pomodoro, got %d", got)
	}
	if d.Timer.ActiveTaskRef == nil {
		t.Fatal("break should keep the task reference")
	}

	breakStart := start.Add(300 * time.Second)
	d, elapsed, ev = run(t, d, breakStart, 100)
	if elapsed != 60 || ev != EventBreakComplete {
		t.Fatalf("expected break complete after 60s, got %v after %ds", ev, elapsed)
	}
	if d.Timer.Status != model.StatusIdle || d.Timer.Phase != model.PhaseWork || d.Timer.SecondsLeft != 300 || d.Timer.EndsAt != nil {
		t.Fatalf("expected idle work 300s, got %+v", d.Timer)
	}
	if got := d.Daily["2024-01-01"].Tasks[0].ActualPomodoros; got != 1 {
		t.Fatalf("break should not count a pomodoro, got %d", got)
	}
}

func TestTickCatchesUpAfterSuspend(t *testing.T) {
	d := StartWork(model.NewAppData(), nil, Session{}, start)
	d, ev := Tick(d, start.Add(10*time.Minute))
	if ev != EventNone || d.Timer.SecondsLeft != 900 {
		t.Fatalf("expected 900s left, got %d (%v)", d.Timer.SecondsLeft, ev)
	}
	d, ev = Tick(d, start.Add(2*time.Hour))
	if ev != EventWorkComplete {
		t.Fatalf("expected work complete, got %v", ev)
	}
}

func TestTickIgnoresIdleAndPaused(t *testing.T) {
	d := model.NewAppData()
	if _, ev := Tick(d, start); ev != EventNone {
		t.Fatal("idle timer should not tick")
	}
	d = Pause(StartWork(d, nil, Session{}, start), start.Add(time.Second))
	got, ev := Tick(d, start.Add(time.Hour))
	if ev != EventNone || got.Timer.SecondsLeft != d.Timer.SecondsLeft {
		t.Fatal("paused timer should not tick")
	}
}

// ==================== Pause / Resume / Reset ====================

func TestPauseResumePreservesRemaining(t *testing.T) {
	d := StartWork(model.NewAppData(), nil, Session{}, start)
	at := start.Add(100 * time.Second)
	d = Pause(d, at)
	if d.Timer.Status != model.StatusPaused || d.Timer.SecondsLeft != 1400 || d.Timer.EndsAt != nil {
		t.Fatalf("unexpected paused timer: %+v", d.Timer)
	}
	d = Resume(d, at)
	if d.Timer.Status != model.StatusRunning || d.Timer.Phase != model.PhaseWork || d.Timer.SecondsLeft != 1400 {
		t.Fatalf("unexpected resumed timer: %+v", d.Timer)
	}
	if *d.Timer.EndsAt != at.UnixMilli()+1_400_000 {
		t.Fatalf("unexpected deadline after resume: %d", *d.Timer.EndsAt)
	}
}

func TestPauseOnlyFromRunning(t *testing.T) {
	d := model.NewAppData()
	if got := Pause(d, start); got.Timer != d.Timer {
		t.Fatal("pause from idle should be a no-op")
	}
	if got := Resume(d, start); got.Timer != d.Timer {
		t.Fatal("resume from idle should be a no-op")
	}
}

func TestResumeAtZeroGoesIdle(t *testing.T) {
	d := StartWork(model.NewAppData(), ref("2024-01-01", 0), Session{WorkMinutes: minutes(10)}, start)
	d = Pause(d, start.Add(time.Hour))
	if d.Timer.SecondsLeft != 0 {
		t.Fatalf("expected frozen at zero, got %d", d.Timer.SecondsLeft)
	}
	d = Resume(d, start.Add(time.Hour))
	if d.Timer.Status != model.StatusIdle || d.Timer.ActiveTaskRef != nil || d.Timer.WorkDurationSeconds != 1500 {
		t.Fatalf("expected idle reset to preferences, got %+v", d.Timer)
	}
}

func TestReset(t *testing.T) {
	d := StartBreak(StartWork(model.NewAppData(), ref("2024-01-01", 0), Session{WorkMinutes: minutes(10)}, start), Session{}, start)
	d = Reset(d)
	want := model.IdleTimer(d.Preferences)
	want.UIOpen = true
	if d.Timer.Status != want.Status || d.Timer.SecondsLeft != want.SecondsLeft || d.Timer.ActiveTaskRef != nil || d.Timer.EndsAt != nil {
		t.Fatalf("unexpected reset timer: %+v", d.Timer)
	}
}

func TestStartBreakKeepsWorkAndRef(t *testing.T) {
	d := StartWork(model.NewAppData(), ref("2024-01-01", 0), Session{WorkMinutes: minutes(10), BreakMinutes: minutes(3)}, start)
	d = StartBreak(d, Session{}, start)
	if d.Timer.Phase != model.PhaseBreak || d.Timer.SecondsLeft != 180 || d.Timer.WorkDurationSeconds != 600 {
		t.Fatalf("unexpected break: %+v", d.Timer)
	}
	if d.Timer.ActiveTaskRef == nil {
		t.Fatal("break should keep the task reference")
	}
	d = StartBreak(d, Session{BreakMinutes: minutes(15)}, start)
	if d.Timer.BreakDurationSeconds != 900 {
		t.Fatalf("expected override break 900, got %d", d.Timer.BreakDurationSeconds)
	}
}

// ==================== Preferences / display ====================

func TestApplyPreferencesOnlyWhenIdle(t *testing.T) {
	d := model.NewAppData()
	d.Preferences.PomodoroMinutes = 40
	d = ApplyPreferences(d)
	if d.Timer.SecondsLeft != 2400 || d.Timer.WorkDurationSeconds != 2400 {
		t.Fatalf("idle timer should follow preferences, got %+v", d.Timer)
	}

	d = StartWork(d, nil, Session{}, start)
	d.Preferences.PomodoroMinutes = 10
	d = ApplyPreferences(d)
	if d.Timer.SecondsLeft != 2400 {
		t.Fatalf("running timer should not change, got %d", d.Timer.SecondsLeft)
	}
}

func TestProgressAndFormat(t *testing.T) {
	d := StartWork(model.NewAppData(), nil, Session{WorkMinutes: minutes(10)}, start)
	if p := Progress(d.Timer, start.Add(5*time.Minute)); p != 0.5 {
		t.Fatalf("expected 0.5, got %v", p)
	}
	tests := map[int]string{0: "00:00", 59: "00:59", 61: "01:01", 1500: "25:00", -4: "00:00", 3600: "60:00"}
	for in, want := range tests {
		if got := Format(in); got != want {
			t.Errorf("Format(%d) = %q, want %q", in, got, want)
		}
	}
}
