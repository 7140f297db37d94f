package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/planner"
	"github.com/sadopc/planr/internal/timer"
)

type settingsModel struct {
	planner *planner.Planner
	width   int
	height  int

	formActive bool
	form       *huh.Form

	// Form values as pointers (survive value copies)
	theme        *model.Theme
	weekStart    *model.WeekStart
	pomodoroWork *string
	breakMinutes *string
	enforceOrder *bool
	sound        *bool
	name         *string
}

func newSettingsModel(p *planner.Planner) settingsModel {
	theme, ws := model.ThemeLaduree, model.WeekStartMonday
	pw, pb, name := "", "", ""
	enforce, sound := true, true
	return settingsModel{
		planner:      p,
		theme:        &theme,
		weekStart:    &ws,
		pomodoroWork: &pw,
		breakMinutes: &pb,
		enforceOrder: &enforce,
		sound:        &sound,
		name:         &name,
	}
}

func (s *settingsModel) setSize(w, h int) {
	s.width = w
	s.height = h
}

func (s settingsModel) update(msg tea.Msg) (settingsModel, tea.Cmd) {
	if s.formActive && s.form != nil {
		return s.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		if key.Matches(msg, keys.Enter) {
			return s.showForm()
		}
	}
	return s, nil
}

func minutesValidator(lo, hi int) func(string) error {
	return func(v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("enter a whole number of minutes")
		}
		if n < lo || n > hi {
			return fmt.Errorf("must be between %d and %d", lo, hi)
		}
		return nil
	}
}

func (s settingsModel) showForm() (settingsModel, tea.Cmd) {
	d := s.planner.Snapshot()
	prefs := d.Preferences
	*s.theme = prefs.Theme
	*s.weekStart = prefs.WeekStartsOn
	*s.pomodoroWork = strconv.Itoa(prefs.PomodoroMinutes)
	*s.breakMinutes = strconv.Itoa(prefs.BreakMinutes)
	*s.enforceOrder = prefs.EnforceTaskOrder
	*s.sound = prefs.SoundEnabled
	*s.name = d.Onboarding.Name

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Pomodoro (min)").Value(s.pomodoroWork).
				Validate(minutesValidator(timer.MinWorkMinutes, timer.MaxWorkMinutes)),
			huh.NewInput().Title("Break (min)").Value(s.breakMinutes).
				Validate(minutesValidator(timer.MinBreakMinutes, timer.MaxBreakMinutes)),
			huh.NewConfirm().Title("Finish tasks in order").Value(s.enforceOrder),
			huh.NewConfirm().Title("Sound when a phase ends").Value(s.sound),
		).Title("Focus"),
		huh.NewGroup(
			huh.NewInput().Title("Your name").Value(s.name),
			huh.NewSelect[model.Theme]().Title("Theme").
				Options(
					huh.NewOption("Ladurée (light)", model.ThemeLaduree),
					huh.NewOption("Nocturne (dark)", model.ThemeNocturne),
				).Value(s.theme),
			huh.NewSelect[model.WeekStart]().Title("Week starts on").
				Options(
					huh.NewOption("Monday", model.WeekStartMonday),
					huh.NewOption("Sunday", model.WeekStartSunday),
				).Value(s.weekStart),
		).Title("General"),
	).WithShowHelp(true).WithShowErrors(true)

	s.formActive = true
	return s, s.form.Init()
}

func (s settingsModel) updateForm(msg tea.Msg) (settingsModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			s.formActive = false
			s.form = nil
			return s, nil
		}
	}

	form, cmd := s.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		s.form = f
	}

	if s.form.State == huh.StateCompleted {
		s.formActive = false
		s.form = nil
		s.save()
		return s, status("Settings saved")
	}
	return s, cmd
}

func (s settingsModel) save() {
	work := atoiOr(*s.pomodoroWork, 0)
	brk := atoiOr(*s.breakMinutes, 0)
	patch := planner.PreferencesPatch{
		Theme:            s.theme,
		WeekStartsOn:     s.weekStart,
		EnforceTaskOrder: s.enforceOrder,
		SoundEnabled:     s.sound,
	}
	if work > 0 {
		patch.PomodoroMinutes = &work
	}
	if brk > 0 {
		patch.BreakMinutes = &brk
	}
	s.planner.UpdatePreferences(patch)
	s.planner.SetName(*s.name)
}

func (s settingsModel) view() string {
	w := s.width - 4

	if s.formActive && s.form != nil {
		return activePanelStyle.Width(w).Render(
			lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render("Settings"), "", s.form.View()),
		)
	}

	d := s.planner.Snapshot()
	p := d.Preferences
	onOff := func(b bool) string {
		if b {
			return "on"
		}
		return "off"
	}
	settings := [][2]string{
		{"Name", placeholder(d.Onboarding.Name, "not set")},
		{"Theme", string(p.Theme)},
		{"Week starts on", string(p.WeekStartsOn)},
		{"Pomodoro", fmt.Sprintf("%d min", p.PomodoroMinutes)},
		{"Break", fmt.Sprintf("%d min", p.BreakMinutes)},
		{"Task order", onOff(p.EnforceTaskOrder)},
		{"Sound", onOff(p.SoundEnabled)},
	}
	if d.LastImportedAt != "" {
		settings = append(settings, [2]string{"Last import", d.LastImportedAt})
	}

	rows := []string{titleStyle.Render("Settings"), ""}
	for _, kv := range settings {
		label := lipgloss.NewStyle().Width(24).Render(kv[0])
		rows = append(rows, fmt.Sprintf("  %s %s", label, highlightStyle.Render(kv[1])))
	}
	rows = append(rows, "", mutedStyle.Render("Press enter to edit settings"))

	return panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
