package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/planner"
	"github.com/sadopc/planr/internal/pledge"
)

type pledgeModel struct {
	planner *planner.Planner
	width   int
	height  int

	cursor int // checklist day

	formActive bool
	form       *huh.Form
	deleting   bool

	// Form values as pointers (survive value copies)
	text        *string
	signature   *string
	startDate   *string
	why         *[model.WhyLineCount]string
	reward      *string
	consequence *string
	actions     *string
	confirm     *bool
}

func newPledgeModel(p *planner.Planner) pledgeModel {
	text, sig, start, reward, consequence, actions := "", "", "", "", "", ""
	confirm := false
	return pledgeModel{
		planner:     p,
		text:        &text,
		signature:   &sig,
		startDate:   &start,
		why:         &[model.WhyLineCount]string{},
		reward:      &reward,
		consequence: &consequence,
		actions:     &actions,
		confirm:     &confirm,
	}
}

func (m *pledgeModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

func (m pledgeModel) update(msg tea.Msg) (pledgeModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	msg2, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(msg2, keys.Left):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg2, keys.Right):
		if m.cursor < model.PledgeDays-1 {
			m.cursor++
		}
	case key.Matches(msg2, keys.Done):
		if !m.planner.TogglePledgeDay(m.cursor) {
			return m, statusError("Days are checked in order and unchecked from the latest")
		}
		if pledge.IsComplete(m.planner.Snapshot().Pledge) {
			return m, status("Pledge complete!")
		}
	case key.Matches(msg2, keys.Restart):
		if m.planner.RestartPledge() {
			m.cursor = 0
			return m, status("Pledge restarted")
		}
	case key.Matches(msg2, keys.Edit):
		return m.showForm()
	case key.Matches(msg2, keys.Reset):
		if m.planner.Snapshot().Pledge != nil {
			return m.showDeleteForm()
		}
	}
	return m, nil
}

func (m pledgeModel) showForm() (pledgeModel, tea.Cmd) {
	d := m.planner.Snapshot()
	cur := d.Pledge
	if cur == nil {
		cur = &model.Pledge{SignatureName: d.Onboarding.Name, StartDate: today(m.planner)}
		if d.Onboarding.PledgeDraft != nil {
			cur.Text = *d.Onboarding.PledgeDraft
		}
	}
	*m.text = cur.Text
	*m.signature = cur.SignatureName
	*m.startDate = cur.StartDate
	*m.why = cur.ImportantBecauseLines
	*m.reward = cur.Reward
	*m.consequence = cur.Consequence
	*m.actions = strings.Join(cur.EnsureActions, "\n")

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("I pledge to").Value(m.text),
			huh.NewInput().Title("Signed").Value(m.signature),
			huh.NewInput().Title("Starting").Value(m.startDate),
		).Title("Pledge"),
		huh.NewGroup(
			huh.NewInput().Title("This is important because").Value(&m.why[0]),
			huh.NewInput().Title("and").Value(&m.why[1]),
			huh.NewInput().Title("and").Value(&m.why[2]),
		).Title("Why"),
		huh.NewGroup(
			huh.NewInput().Title("If I keep it I will").Value(m.reward),
			huh.NewInput().Title("If I break it I will").Value(m.consequence),
			huh.NewText().Title(fmt.Sprintf("To make sure, I will (one per line, up to %d)", model.MaxEnsureActions)).
				Value(m.actions),
		).Title("Stakes"),
	).WithShowHelp(true).WithShowErrors(true)

	m.deleting = false
	m.formActive = true
	return m, m.form.Init()
}

func (m pledgeModel) showDeleteForm() (pledgeModel, tea.Cmd) {
	*m.confirm = false
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().Title("Delete the pledge?").
				Affirmative("Delete").Negative("Keep").Value(m.confirm),
		),
	)
	m.deleting = true
	m.formActive = true
	return m, m.form.Init()
}

func (m pledgeModel) updateForm(msg tea.Msg) (pledgeModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			m.formActive = false
			m.form = nil
			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State == huh.StateCompleted {
		m.formActive = false
		m.form = nil
		if m.deleting {
			if *m.confirm && m.planner.DeletePledge() {
				return m, status("Pledge deleted")
			}
			return m, nil
		}
		m.save()
		return m, status("Pledge saved")
	}
	return m, cmd
}

func (m pledgeModel) save() {
	text := *m.text
	var actions []string
	for _, line := range strings.Split(*m.actions, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			actions = append(actions, line)
		}
	}
	m.planner.SetPledge(pledge.Input{
		Text:                  &text,
		SignatureName:         *m.signature,
		StartDate:             strings.TrimSpace(*m.startDate),
		ImportantBecauseLines: m.why[:],
		Reward:                *m.reward,
		Consequence:           *m.consequence,
		EnsureActions:         actions,
	})
}

func (m pledgeModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		return activePanelStyle.Width(w).Render(m.form.View())
	}

	d := m.planner.Snapshot()
	p := d.Pledge
	if p == nil {
		return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("Pledge"),
			"",
			mutedStyle.Render("No pledge yet. Press enter to write one."),
		))
	}

	rows := []string{titleStyle.Render("I pledge to"), p.Text, ""}
	for _, line := range p.ImportantBecauseLines {
		if line != "" {
			rows = append(rows, mutedStyle.Render("because ")+line)
		}
	}
	if p.Reward != "" {
		rows = append(rows, successStyle.Render("reward ")+p.Reward)
	}
	if p.Consequence != "" {
		rows = append(rows, errorStyle.Render("consequence ")+p.Consequence)
	}
	for _, a := range p.EnsureActions {
		rows = append(rows, highlightStyle.Render("• ")+a)
	}

	var days []string
	for i, done := range p.Checklist {
		mark := "[ ]"
		if done {
			mark = "[x]"
		}
		label := fmt.Sprintf("%s Day %d", mark, i+1)
		style := normalItemStyle
		switch {
		case i == m.cursor:
			style = selectedItemStyle
		case done:
			style = successStyle
		}
		days = append(days, style.Padding(0, 1).Render(label))
	}
	rows = append(rows, "", lipgloss.JoinHorizontal(lipgloss.Top, days...))

	progress := fmt.Sprintf("%d/%d days", pledge.DaysDone(*p), model.PledgeDays)
	if pledge.IsComplete(p) {
		progress = successStyle.Bold(true).Render("Complete! Press r to go again.")
	}
	rows = append(rows, "", progress)
	if p.SignatureName != "" {
		rows = append(rows, mutedStyle.Render("signed "+p.SignatureName))
	}
	rows = append(rows, "", mutedStyle.Render("←/→: day  d: check  r: restart  enter: edit  x: delete"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
