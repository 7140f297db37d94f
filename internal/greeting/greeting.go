// Package greeting builds the header greeting shown above the planner.
package greeting

import (
	"fmt"
	"strings"
	"time"
)

const fallbackName = "friend"

type bucket struct {
	startHour, endHour int
	messages           []string
}

var buckets = []bucket{
	{0, 4, []string{
		"Hello {name}",
		"Welcome back, {name}",
		"Hey there, {name}",
		"Howdy, {name}",
		"{name}, you’re back!",
		"Hi {name}",
	}},
	{5, 11, []string{
		"Good morning, {name}",
		"Morning, {name}",
		"Hey {name}, ready to start?",
		"Rise and shine, {name}",
		"Hello {name}",
		"{name}, good to see you",
	}},
	{12, 16, []string{
		"Good afternoon, {name}",
		"Hey {name}, welcome back",
		"Hello {name}",
		"{name}, you’re back!",
		"Hi {name}",
		"Afternoon, {name}",
	}},
	{17, 20, []string{
		"Good evening, {name}",
		"Evening, {name}",
		"Welcome back, {name}",
		"Hello {name}",
		"Hey there, {name}",
		"{name}, glad you’re here",
	}},
	{21, 23, []string{
		"Hey {name}",
		"Hello {name}",
		"You’re back, {name}",
		"Welcome back, {name}",
		"Hi {name}",
		"Howdy, {name}",
	}},
}

// For returns a greeting for name at t. The wording depends on the time of
// day and stays the same for the whole hour. A blank name becomes "friend".
func For(name string, t time.Time) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = fallbackName
	}
	hour := t.Hour()
	b := buckets[0]
	for _, candidate := range buckets {
		if hour >= candidate.startHour && hour <= candidate.endHour {
			b = candidate
			break
		}
	}
	// Month is zero-based in the seed.
	seed := fmt.Sprintf("%d-%d-%d-%d", t.Year(), int(t.Month())-1, t.Day(), hour)
	template := b.messages[stableIndex(seed, len(b.messages))]
	return strings.Replace(template, "{name}", name, 1)
}

func stableIndex(seed string, modulo int) int {
	if modulo <= 0 {
		return 0
	}
	acc := 0
	for i := 0; i < len(seed); i++ {
		acc = (acc + int(seed[i])*(i+1)) % modulo
	}
	return acc
}
