package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/planr/internal/greeting"
	"github.com/sadopc/planr/internal/planner"
)

// onboardingModel asks for a name and an optional pledge the first time
// planr runs.
type onboardingModel struct {
	planner *planner.Planner
	form    *huh.Form

	name   *string
	pledge *string
}

func newOnboardingModel(p *planner.Planner) onboardingModel {
	d := p.Snapshot()
	name := d.Onboarding.Name
	draft := ""
	if d.Onboarding.PledgeDraft != nil {
		draft = *d.Onboarding.PledgeDraft
	}
	m := onboardingModel{planner: p, name: &name, pledge: &draft}
	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewNote().Title("Welcome to planr").
				Description("Five tasks a day, one plan a week, one promise to yourself."),
			huh.NewInput().Title("What should we call you?").Value(m.name),
		),
		huh.NewGroup(
			huh.NewText().Title("Write a pledge for the next five days (optional)").Value(m.pledge),
		),
	).WithShowHelp(true)
	return m
}

func (m onboardingModel) active() bool {
	return m.form != nil
}

func (m onboardingModel) update(msg tea.Msg) (onboardingModel, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.planner.SetName(*m.name)
		text := *m.pledge
		m.planner.CompleteOnboarding(&text)
		m.form = nil
		return m, status(greeting.For(*m.name, m.planner.Now()))
	case huh.StateAborted:
		// Keep what was typed so the next launch picks up where it stopped.
		m.planner.SetName(*m.name)
		m.planner.SetPledgeDraft(*m.pledge)
		return m, tea.Quit
	}
	return m, cmd
}

func (m onboardingModel) view(width int) string {
	return activePanelStyle.Width(max(20, width-4)).Render(lipgloss.JoinVertical(lipgloss.Left, m.form.View()))
}
