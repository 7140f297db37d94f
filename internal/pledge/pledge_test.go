package pledge

import (
	"testing"
	"time"

	"github.com/sadopc/planr/internal/model"
)

var now = time.Date(2024, 3, 4, 12, 30, 0, 0, time.UTC)

func withDays(days ...bool) model.Pledge {
	p := New("run every morning", "Sam", now)
	copy(p.Checklist[:], days)
	return p
}

func TestNewTrimsText(t *testing.T) {
	p := New("  read more  ", "Ana", now)
	if p.Text != "read more" || p.SignatureName != "Ana" {
		t.Fatalf("unexpected pledge: %+v", p)
	}
	if p.CreatedAt != "2024-03-04T12:30:00.000Z" || p.StartDate != p.CreatedAt {
		t.Fatalf("unexpected timestamps: %q %q", p.CreatedAt, p.StartDate)
	}
	if p.EnsureActions == nil {
		t.Fatal("EnsureActions should be empty, not nil")
	}
}

// ==================== Toggle ====================

func TestToggleCheckInOrder(t *testing.T) {
	tests := []struct {
		name string
		p    model.Pledge
		day  int
		ok   bool
	}{
		{"first day", withDays(), 0, true},
		{"skip ahead", withDays(), 2, false},
		{"next day", withDays(true, true), 2, true},
		{"uncheck latest", withDays(true, true, true), 2, true},
		{"uncheck earlier", withDays(true, true, true), 1, false},
		{"uncheck first of one", withDays(true), 0, true},
		{"out of range", withDays(), 5, false},
		{"negative", withDays(), -1, false},
		{"complete is frozen", withDays(true, true, true, true, true), 4, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.p.Checklist
			got, ok := Toggle(tt.p, tt.day, now.Add(time.Hour))
			if ok != tt.ok {
				t.Fatalf("Toggle(%d) ok = %v, want %v", tt.day, ok, tt.ok)
			}
			if !ok && got.Checklist != before {
				t.Fatalf("rejected toggle changed checklist: %v", got.Checklist)
			}
			if ok && got.Checklist[tt.day] == before[tt.day] {
				t.Fatal("accepted toggle did not flip the day")
			}
			if ok && got.LastUpdatedAt == tt.p.LastUpdatedAt {
				t.Fatal("accepted toggle should stamp LastUpdatedAt")
			}
		})
	}
}

func TestToggleToCompletion(t *testing.T) {
	p := withDays()
	for day := range model.PledgeDays {
		var ok bool
		if p, ok = Toggle(p, day, now); !ok {
			t.Fatalf("day %d rejected", day)
		}
	}
	if !IsComplete(&p) || DaysDone(p) != 5 {
		t.Fatalf("expected complete pledge, got %v", p.Checklist)
	}
	p = Restart(p, now)
	if IsComplete(&p) || DaysDone(p) != 0 {
		t.Fatalf("restart should clear the checklist, got %v", p.Checklist)
	}
}

func TestIsCompleteNil(t *testing.T) {
	if IsComplete(nil) {
		t.Fatal("nil pledge is not complete")
	}
}

// ==================== Apply ====================

func TestApplyKeepsChecklistAndCreatedAt(t *testing.T) {
	current := withDays(true, true)
	later := now.Add(24 * time.Hour)
	got := Apply(&current, Input{
		SignatureName:         "  Sam Doe ",
		StartDate:             "2024-03-05",
		ImportantBecauseLines: []string{"health"},
		Reward:                " cake ",
		Consequence:           " chores ",
		EnsureActions:         []string{"a", "b", "c", "d", "e", "f"},
	}, later)

	if got.Text != current.Text {
		t.Fatalf("nil text should keep %q, got %q", current.Text, got.Text)
	}
	if got.Checklist != current.Checklist || got.CreatedAt != current.CreatedAt {
		t.Fatal("checklist and createdAt must survive an edit")
	}
	if got.SignatureName != "Sam Doe" || got.Reward != "cake" || got.Consequence != "chores" {
		t.Fatalf("fields not trimmed: %+v", got)
	}
	if got.ImportantBecauseLines != [model.WhyLineCount]string{"health", "", ""} {
		t.Fatalf("unexpected why lines: %v", got.ImportantBecauseLines)
	}
	if len(got.EnsureActions) != model.MaxEnsureActions {
		t.Fatalf("expected %d actions, got %d", model.MaxEnsureActions, len(got.EnsureActions))
	}
	if got.LastUpdatedAt != model.Timestamp(later) {
		t.Fatalf("unexpected LastUpdatedAt %q", got.LastUpdatedAt)
	}
}

func TestApplyCreates(t *testing.T) {
	text := " new habit "
	got := Apply(nil, Input{Text: &text}, now)
	if got.Text != "new habit" || got.CreatedAt != model.Timestamp(now) {
		t.Fatalf("unexpected pledge: %+v", got)
	}
	if got.Checklist != [model.PledgeDays]bool{} {
		t.Fatal("new pledge should start unchecked")
	}
}
