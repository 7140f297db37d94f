package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/planner"
	"github.com/sadopc/planr/internal/timer"
)

type timerModel struct {
	planner *planner.Planner
	width   int
	height  int
}

func newTimerModel(p *planner.Planner) timerModel {
	return timerModel{planner: p}
}

func (m *timerModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	msg2, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	t := m.planner.Snapshot().Timer

	switch {
	case key.Matches(msg2, keys.Start):
		if t.Status == model.StatusIdle {
			if !m.planner.StartGenericWork(timer.Session{}) {
				return m, statusError(m.planner.Snapshot().Timer.LastError)
			}
			return m, status("Pomodoro started")
		}
	case key.Matches(msg2, keys.Pause):
		switch t.Status {
		case model.StatusRunning:
			m.planner.Pause()
		case model.StatusPaused:
			m.planner.Resume()
		}
	case key.Matches(msg2, keys.Break):
		m.planner.StartBreak(timer.Session{})
		return m, status("Break started")
	case key.Matches(msg2, keys.Reset):
		if t.Status != model.StatusIdle {
			m.planner.ResetTimer()
			return m, status("Timer reset. A half session does not count.")
		}
	}
	return m, nil
}

// tick advances the planner and reports a phase change, if any.
func (m timerModel) tick() timer.Event {
	if !m.planner.Running() {
		return timer.EventNone
	}
	return m.planner.Tick()
}

func (m timerModel) view() string {
	w := m.width - 4
	now := m.planner.Now()
	d := m.planner.Snapshot()
	t := d.Timer
	left := timer.SecondsLeft(t, now)

	display := timer.Format(left)
	var clock, phase string
	switch {
	case t.Status == model.StatusPaused:
		clock = timerPausedStyle.Width(w - 6).Render(display)
		phase = warningStyle.Bold(true).Render("PAUSED")
	case t.Status == model.StatusRunning && t.Phase == model.PhaseBreak:
		clock = timerRunningStyle.Width(w - 6).Render(display)
		phase = successStyle.Bold(true).Render("BREAK")
	case t.Status == model.StatusRunning:
		clock = timerStyle.Foreground(colorAccent).Width(w - 6).Render(display)
		phase = accentStyle.Bold(true).Render("WORK")
	default:
		clock = timerStyle.Width(w - 6).Render(display)
		phase = mutedStyle.Render("Ready to start")
	}

	task := mutedStyle.Render("Not tied to a task")
	if ref := t.ActiveTaskRef; ref != nil {
		if e, ok := d.Daily[ref.Date]; ok && model.ValidTaskIndex(ref.TaskIndex) {
			task = fmt.Sprintf("Task %d: %s", ref.TaskIndex+1, placeholder(e.Tasks[ref.TaskIndex].Text, "untitled"))
		}
	}

	var errLine string
	if t.LastError != "" {
		errLine = errorStyle.Render(t.LastError)
	}

	var controls string
	switch t.Status {
	case model.StatusIdle:
		controls = mutedStyle.Render("s: start  b: break")
	case model.StatusRunning:
		controls = mutedStyle.Render("space: pause  x: reset  b: break")
	case model.StatusPaused:
		controls = mutedStyle.Render("space: resume  x: reset")
	}

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Pomodoro"),
		"",
		clock,
		phase,
		"",
		renderProgress(timer.Progress(t, now), min(w-10, 40)),
		"",
		task,
		errLine,
		"",
		controls,
	))
}

func renderProgress(frac float64, width int) string {
	if width < 4 {
		return ""
	}
	filled := int(frac*float64(width) + 0.5)
	return successStyle.Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}

// indicator is the compact timer shown in the footer on every view.
func (m timerModel) indicator() string {
	t := m.planner.Snapshot().Timer
	left := timer.Format(timer.SecondsLeft(t, m.planner.Now()))
	switch t.Status {
	case model.StatusRunning:
		if t.Phase == model.PhaseBreak {
			return successStyle.Render(" ☕ " + left)
		}
		return accentStyle.Render(" ● " + left)
	case model.StatusPaused:
		return warningStyle.Render(" ⏸ " + left)
	}
	return ""
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
