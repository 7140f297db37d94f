// Package quotes picks the quote of the day.
package quotes

import "time"

type Quote struct {
	Text   string
	Author string
}

func (q Quote) String() string {
	if q.Author == "" {
		return q.Text
	}
	return q.Text + " (" + q.Author + ")"
}

// ForDate returns the same quote for every instant of a UTC day and walks
// the list one entry per day.
func ForDate(t time.Time) Quote {
	n := int64(len(all))
	day := t.UnixMilli() / 86_400_000
	if t.UnixMilli() < 0 && t.UnixMilli()%86_400_000 != 0 {
		day--
	}
	return all[((day%n)+n)%n]
}

// Len is the size of the rotation.
func Len() int { return len(all) }
