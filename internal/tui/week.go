package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/planr/internal/datekey"
	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/planner"
)

type weekModel struct {
	planner *planner.Planner
	width   int
	height  int

	offset int // weeks back from the current one

	chart barchart.Model

	formActive bool
	form       *huh.Form
	formDate   string

	// Form values as pointers (survive value copies)
	mostImportant *[model.MostImportantCount]string
	secondary     *[model.SecondaryCount]string
	additional    *[model.AdditionalCount]string
	commitment    *string
}

func newWeekModel(p *planner.Planner) weekModel {
	commitment := ""
	return weekModel{
		planner:       p,
		chart:         barchart.New(60, 10),
		mostImportant: &[model.MostImportantCount]string{},
		secondary:     &[model.SecondaryCount]string{},
		additional:    &[model.AdditionalCount]string{},
		commitment:    &commitment,
	}
}

func (m *weekModel) setSize(w, h int) {
	m.width = w
	m.height = h
}

// anchor is a day inside the displayed week.
func (m weekModel) anchor() string {
	return datekey.Key(m.planner.Now().AddDate(0, 0, -7*m.offset))
}

func (m weekModel) update(msg tea.Msg) (weekModel, tea.Cmd) {
	if m.formActive && m.form != nil {
		return m.updateForm(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, keys.Left):
			m.offset++
		case key.Matches(msg, keys.Right):
			if m.offset > 0 {
				m.offset--
			}
		case key.Matches(msg, keys.Edit):
			return m.showForm()
		}
	}
	return m, nil
}

func (m weekModel) showForm() (weekModel, tea.Cmd) {
	date := m.anchor()
	plan, ok := m.planner.EnsureWeeklyPlan(date)
	if !ok {
		return m, statusError("Invalid week")
	}
	*m.mostImportant = plan.MostImportant
	*m.secondary = plan.Secondary
	*m.additional = plan.Additional
	*m.commitment = plan.Commitment

	inputs := func(values []string, title string) []huh.Field {
		fields := make([]huh.Field, len(values))
		for i := range values {
			fields[i] = huh.NewInput().Title(fmt.Sprintf("%s %d", title, i+1)).Value(&values[i])
		}
		return fields
	}

	m.form = huh.NewForm(
		huh.NewGroup(inputs(m.mostImportant[:], "Most important")...).Title("Most important"),
		huh.NewGroup(inputs(m.secondary[:], "Secondary")...).Title("Secondary"),
		huh.NewGroup(inputs(m.additional[:], "Additional")...).Title("Additional"),
		huh.NewGroup(
			huh.NewText().Title("This week I commit to").Value(m.commitment),
		).Title("Commitment"),
	).WithShowHelp(true).WithShowErrors(true)

	m.formDate = date
	m.formActive = true
	return m, m.form.Init()
}

func (m weekModel) updateForm(msg tea.Msg) (weekModel, tea.Cmd) {
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
		m.save()
		return m, status("Weekly plan saved")
	}
	return m, cmd
}

func (m weekModel) save() {
	for i, v := range m.mostImportant {
		m.planner.SetWeeklyMostImportant(m.formDate, i, strings.TrimSpace(v))
	}
	for i, v := range m.secondary {
		m.planner.SetWeeklySecondary(m.formDate, i, strings.TrimSpace(v))
	}
	for i, v := range m.additional {
		m.planner.SetWeeklyAdditional(m.formDate, i, strings.TrimSpace(v))
	}
	m.planner.SetWeeklyCommitment(m.formDate, strings.TrimSpace(*m.commitment))
}

// weekDays returns the week key and its seven day keys.
func (m weekModel) weekDays(d model.AppData) (string, []string) {
	week, err := datekey.WeekKeyFor(m.anchor(), d.Preferences.WeekStartsOn)
	if err != nil {
		return "", nil
	}
	days, _ := datekey.WeekDays(week)
	return week, days
}

func (m *weekModel) buildChart(d model.AppData, days []string) {
	chartWidth := m.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 10
	if m.height > 40 {
		chartHeight = 14
	}

	m.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for _, day := range days {
		label := day
		if t, err := datekey.Parse(day); err == nil {
			label = t.Format("Mon 02")
		}

		actual, target := 0, 0
		if e, ok := d.Daily[day]; ok {
			for _, task := range e.Tasks {
				actual += task.ActualPomodoros
				if task.Text != "" {
					target += task.TargetPomodoros
				}
			}
		}

		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{
				{Name: "done", Value: float64(actual), Style: lipgloss.NewStyle().Foreground(colorSuccess)},
				{Name: "planned", Value: float64(max(0, target-actual)), Style: lipgloss.NewStyle().Foreground(colorSubtle)},
			},
		})
	}

	m.chart.PushAll(bars)
	m.chart.Draw()
}

func (m weekModel) view() string {
	w := m.width - 4

	if m.formActive && m.form != nil {
		return activePanelStyle.Width(w).Render(m.form.View())
	}

	d := m.planner.Snapshot()
	week, days := m.weekDays(d)
	plan, ok := d.Weekly[week]
	if !ok {
		plan = model.NewWeeklyPlan(week)
	}
	m.buildChart(d, days)

	label := week
	if t, err := datekey.Parse(week); err == nil {
		label = fmt.Sprintf("%s to %s", t.Format("Jan 02"), t.Add(6*24*time.Hour).Format("Jan 02, 2006"))
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Week"), "  ", mutedStyle.Render(label),
	)

	lists := lipgloss.JoinHorizontal(lipgloss.Top,
		renderGoals("Most important", plan.MostImportant[:], (w-6)/3),
		renderGoals("Secondary", plan.Secondary[:], (w-6)/3),
		renderGoals("Additional", plan.Additional[:], (w-6)/3),
	)

	commitment := mutedStyle.Render("Press enter to plan the week")
	if plan.Commitment != "" {
		commitment = highlightStyle.Render("Commitment: ") + plan.Commitment
	}

	legend := successStyle.Render("●") + " done  " + lipgloss.NewStyle().Foreground(colorSubtle).Render("●") + " planned"
	nav := mutedStyle.Render("  ←/→: previous/next week  enter: edit")

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", lists, "", commitment, "", m.chart.View(), legend, "", nav,
		),
	)
}

func renderGoals(title string, goals []string, width int) string {
	rows := []string{highlightStyle.Bold(true).Render(title)}
	for i, g := range goals {
		rows = append(rows, fmt.Sprintf("%d. %s", i+1, placeholder(g, "·")))
	}
	return lipgloss.NewStyle().Width(max(width, 16)).Render(strings.Join(rows, "\n"))
}
