package tui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/planr/internal/datekey"
	"github.com/sadopc/planr/internal/planner"
)

// viewState represents the currently active view.
type viewState int

const (
	viewToday viewState = iota
	viewWeek
	viewPledge
	viewTimer
	viewSettings
	viewGuide
)

var viewNames = []string{"Today", "Week", "Pledge", "Timer", "Settings", "Guide"}

// --- Messages ---

type statusMsg struct {
	text    string
	isError bool
}

type tickMsg time.Time

type exportDoneMsg struct {
	path string
}

func status(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text} }
}

func statusError(text string) tea.Cmd {
	return func() tea.Msg { return statusMsg{text: text, isError: true} }
}

// --- Helpers ---

func today(p *planner.Planner) string {
	return datekey.Key(p.Now())
}

// atoiOr parses a form field, returning fallback for anything that is not
// a whole number.
func atoiOr(s string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return n
}

// validateInt is a huh input validator for optional whole numbers.
func validateInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err
}

func placeholder(s, empty string) string {
	if strings.TrimSpace(s) == "" {
		return mutedStyle.Render(empty)
	}
	return s
}

type switchViewMsg struct {
	view viewState
}

func switchView(v viewState) tea.Cmd {
	return func() tea.Msg { return switchViewMsg{view: v} }
}
