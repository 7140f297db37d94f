package datekey

import (
	"testing"
	"time"

	"github.com/sadopc/planr/internal/model"
)

func TestKey(t *testing.T) {
	d := time.Date(2024, time.March, 7, 23, 59, 0, 0, time.Local)
	if got := Key(d); got != "2024-03-07" {
		t.Fatalf("Key = %q, want 2024-03-07", got)
	}
}

func TestParseRoundTrip(t *testing.T) {
	d, err := Parse("2024-01-01")
	if err != nil {
		t.Fatal(err)
	}
	if d.Hour() != 0 || d.Location() != time.Local {
		t.Fatalf("expected local midnight, got %v", d)
	}
	if Key(d) != "2024-01-01" {
		t.Fatalf("round trip mismatch: %s", Key(d))
	}
}

func TestParseInvalid(t *testing.T) {
	for _, k := range []string{"", "2024-13-01", "01/02/2024", "2024-1-1"} {
		if Valid(k) {
			t.Errorf("Valid(%q) = true, want false", k)
		}
	}
}

func TestWeekKey(t *testing.T) {
	// 2024-01-03 is a Wednesday.
	wed := time.Date(2024, time.January, 3, 15, 0, 0, 0, time.Local)
	tests := []struct {
		ws   model.WeekStart
		want string
	}{
		{model.WeekStartMonday, "2024-01-01"},
		{model.WeekStartSunday, "2023-12-31"},
	}
	for _, tt := range tests {
		if got := WeekKey(wed, tt.ws); got != tt.want {
			t.Errorf("WeekKey(%s) = %q, want %q", tt.ws, got, tt.want)
		}
	}
}

func TestWeekKeyOnStartDay(t *testing.T) {
	mon := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.Local)
	if got := WeekKey(mon, model.WeekStartMonday); got != "2024-01-01" {
		t.Fatalf("week start day should map to itself, got %s", got)
	}
	sun := time.Date(2023, time.December, 31, 8, 0, 0, 0, time.Local)
	if got := WeekKey(sun, model.WeekStartMonday); got != "2023-12-25" {
		t.Fatalf("sunday with monday start should go back six days, got %s", got)
	}
	if got := WeekKey(sun, model.WeekStartSunday); got != "2023-12-31" {
		t.Fatalf("sunday with sunday start should map to itself, got %s", got)
	}
}

func TestWeekKeyFor(t *testing.T) {
	got, err := WeekKeyFor("2024-01-06", model.WeekStartMonday)
	if err != nil {
		t.Fatal(err)
	}
	if got != "2024-01-01" {
		t.Fatalf("WeekKeyFor = %s", got)
	}
	if _, err := WeekKeyFor("nope", model.WeekStartMonday); err == nil {
		t.Fatal("expected error for bad key")
	}
}

func TestWeekDays(t *testing.T) {
	days, err := WeekDays("2024-02-26")
	if err != nil {
		t.Fatal(err)
	}
	if len(days) != 7 {
		t.Fatalf("expected 7 days, got %d", len(days))
	}
	// crosses the leap day
	if days[3] != "2024-02-29" || days[6] != "2024-03-03" {
		t.Fatalf("unexpected days: %v", days)
	}
}
