// Package datekey converts calendar dates into the string keys used to
// index daily entries and weekly plans.
package datekey

import (
	"fmt"
	"time"

	"github.com/sadopc/planr/internal/model"
)

// Layout is the canonical key format.
const Layout = "2006-01-02"

// Key returns the YYYY-MM-DD key of t in t's own location.
func Key(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the key of the current local date.
func Today() string {
	return Key(time.Now())
}

// Parse reads a key as local midnight of that date.
func Parse(key string) (time.Time, error) {
	t, err := time.ParseInLocation(Layout, key, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date key %q: %w", key, err)
	}
	return t, nil
}

func Valid(key string) bool {
	_, err := Parse(key)
	return err == nil
}

// WeekStartDay maps the preference value onto a weekday. Anything other
// than sunday is treated as monday.
func WeekStartDay(ws model.WeekStart) time.Weekday {
	if ws == model.WeekStartSunday {
		return time.Sunday
	}
	return time.Monday
}

// StartOfWeek returns midnight of the most recent week start at or before t.
func StartOfWeek(t time.Time, ws model.WeekStart) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := (int(day.Weekday()) - int(WeekStartDay(ws)) + 7) % 7
	return day.AddDate(0, 0, -diff)
}

// WeekKey returns the key of the week containing t.
func WeekKey(t time.Time, ws model.WeekStart) string {
	return Key(StartOfWeek(t, ws))
}

// WeekKeyFor resolves the week key of a day key.
func WeekKeyFor(dayKey string, ws model.WeekStart) (string, error) {
	t, err := Parse(dayKey)
	if err != nil {
		return "", err
	}
	return WeekKey(t, ws), nil
}

// WeekDays lists the seven day keys of the week starting at weekKey.
func WeekDays(weekKey string) ([]string, error) {
	start, err := Parse(weekKey)
	if err != nil {
		return nil, err
	}
	days := make([]string, 7)
	for i := range days {
		days[i] = Key(start.AddDate(0, 0, i))
	}
	return days, nil
}
