package tui

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/planr/internal/datekey"
	"github.com/sadopc/planr/internal/export"
	"github.com/sadopc/planr/internal/planner"
	"github.com/sadopc/planr/internal/timer"
)

type Options struct {
	// TickInterval defaults to one second.
	TickInterval time.Duration
	// Cue plays the audible signal on phase changes. Nil disables it.
	Cue func()
	// ExportDir receives exports; defaults to the home directory.
	ExportDir string
	Logger    *slog.Logger
}

// App is the root Bubble Tea model.
type App struct {
	planner *planner.Planner
	opts    Options
	log     *slog.Logger
	width   int
	height  int

	activeView    viewState
	showHelp      bool
	exportPicking bool
	exportCursor  int

	onboarding onboardingModel
	today      todayModel
	week       weekModel
	pledge     pledgeModel
	timer      timerModel
	settings   settingsModel
	guide      *guideModel

	help    help.Model
	status  string
	isError bool
}

func NewApp(p *planner.Planner, opts Options) App {
	if opts.TickInterval <= 0 {
		opts.TickInterval = time.Second
	}
	if opts.ExportDir == "" {
		opts.ExportDir, _ = os.UserHomeDir()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	h := help.New()
	h.ShowAll = false

	d := p.Snapshot()
	applyTheme(d.Preferences.Theme)

	a := App{
		planner:    p,
		opts:       opts,
		log:        log,
		activeView: viewToday,
		today:      newTodayModel(p),
		week:       newWeekModel(p),
		pledge:     newPledgeModel(p),
		timer:      newTimerModel(p),
		settings:   newSettingsModel(p),
		guide:      newGuideModel(),
		help:       h,
	}
	if !d.Onboarding.OnboardingCompleted {
		a.onboarding = newOnboardingModel(p)
	}
	// A timer left open in a previous session comes back on screen.
	if d.Timer.UIOpen {
		a.activeView = viewTimer
	}
	return a
}

func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(a.opts.TickInterval)}
	if a.onboarding.active() {
		cmds = append(cmds, a.onboarding.form.Init())
	}
	return tea.Batch(cmds...)
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.help.Width = msg.Width
		contentHeight := a.height - 4 // header + footer
		a.today.setSize(a.width, contentHeight)
		a.week.setSize(a.width, contentHeight)
		a.pledge.setSize(a.width, contentHeight)
		a.timer.setSize(a.width, contentHeight)
		a.settings.setSize(a.width, contentHeight)
		a.guide.setSize(a.width, contentHeight)
		if a.onboarding.active() {
			var cmd tea.Cmd
			a.onboarding, cmd = a.onboarding.update(msg)
			return a, cmd
		}
		return a, nil

	case tickMsg:
		return a, tea.Batch(tickCmd(a.opts.TickInterval), a.onTick())

	case statusMsg:
		a.status = msg.text
		a.isError = msg.isError
		return a, nil

	case switchViewMsg:
		return a.switchTo(msg.view)

	case exportDoneMsg:
		a.status = "Exported to " + msg.path
		a.isError = false
		a.exportPicking = false
		return a, nil
	}

	if a.onboarding.active() {
		var cmd tea.Cmd
		a.onboarding, cmd = a.onboarding.update(msg)
		return a, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		// Export picker
		if a.exportPicking {
			return a.updateExportPicker(msg)
		}

		// If a child view is capturing input (e.g. form), delegate first.
		if a.isFormActive() {
			return a.updateActiveView(msg)
		}

		switch {
		case key.Matches(msg, keys.Export):
			a.exportPicking = true
			a.exportCursor = 0
			return a, nil
		case key.Matches(msg, keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, keys.Help):
			a.showHelp = !a.showHelp
			a.help.ShowAll = a.showHelp
			return a, nil
		case key.Matches(msg, keys.Tab1):
			return a.switchTo(viewToday)
		case key.Matches(msg, keys.Tab2):
			return a.switchTo(viewWeek)
		case key.Matches(msg, keys.Tab3):
			return a.switchTo(viewPledge)
		case key.Matches(msg, keys.Tab4):
			return a.switchTo(viewTimer)
		case key.Matches(msg, keys.Tab5):
			return a.switchTo(viewSettings)
		case key.Matches(msg, keys.Tab6):
			return a.switchTo(viewGuide)
		case key.Matches(msg, keys.Tab):
			return a.switchTo((a.activeView + 1) % viewState(len(viewNames)))
		}
	}

	return a.updateActiveView(msg)
}

// onTick drives the timer. Every view shows the countdown, so ticks are
// handled here rather than by the timer view.
func (a App) onTick() tea.Cmd {
	ev := a.timer.tick()
	if ev == timer.EventNone {
		return nil
	}
	a.log.Info("timer phase complete", "event", ev.String())
	if a.opts.Cue != nil && a.planner.SoundEnabled() {
		a.opts.Cue()
	}
	switch ev {
	case timer.EventWorkComplete:
		return status("Pomodoro complete. Break time!")
	default:
		return status("Break over. Ready for the next one.")
	}
}

func (a App) switchTo(v viewState) (tea.Model, tea.Cmd) {
	if v == a.activeView {
		return a, nil
	}
	if v == viewTimer {
		a.planner.OpenTimer()
	} else if a.activeView == viewTimer {
		a.planner.CloseTimer()
	}
	a.activeView = v
	return a, nil
}

func (a App) updateActiveView(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch a.activeView {
	case viewToday:
		a.today, cmd = a.today.update(msg)
	case viewWeek:
		a.week, cmd = a.week.update(msg)
	case viewPledge:
		a.pledge, cmd = a.pledge.update(msg)
	case viewTimer:
		a.timer, cmd = a.timer.update(msg)
	case viewSettings:
		a.settings, cmd = a.settings.update(msg)
	}
	return a, cmd
}

func (a App) isFormActive() bool {
	switch a.activeView {
	case viewToday:
		return a.today.formActive
	case viewWeek:
		return a.week.formActive
	case viewPledge:
		return a.pledge.formActive
	case viewSettings:
		return a.settings.formActive
	}
	return false
}

func (a App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	d := a.planner.Snapshot()
	applyTheme(d.Preferences.Theme)

	if a.onboarding.active() {
		return a.onboarding.view(a.width)
	}

	header := a.renderHeader()
	footer := a.renderFooter()

	var content string
	switch a.activeView {
	case viewToday:
		content = a.today.view()
	case viewWeek:
		content = a.week.view()
	case viewPledge:
		content = a.pledge.view()
	case viewTimer:
		content = a.timer.view()
	case viewSettings:
		content = a.settings.view()
	case viewGuide:
		content = a.guide.view(d.Preferences.Theme)
	}

	// Calculate available height for content
	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := a.height - headerHeight - footerHeight
	if contentHeight < 1 {
		contentHeight = 1
	}

	// Show export picker overlay
	if a.exportPicking {
		content = a.renderExportPicker()
	}

	content = lipgloss.NewStyle().
		Width(a.width).
		Height(contentHeight).
		Render(content)

	return lipgloss.JoinVertical(lipgloss.Left, header, content, footer)
}

func (a App) renderHeader() string {
	var tabs []string
	for i, name := range viewNames {
		if viewState(i) == a.activeView {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}

	tabRow := lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...)

	title := lipgloss.NewStyle().Bold(true).Foreground(colorPrimary).Render("planr")
	gap := a.width - lipgloss.Width(title) - lipgloss.Width(tabRow) - 4
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return headerStyle.Render(
		lipgloss.JoinHorizontal(lipgloss.Bottom, title, spacer, tabRow),
	)
}

func (a App) renderFooter() string {
	helpView := a.help.View(keys)

	status := ""
	if a.status != "" {
		style := mutedStyle
		if a.isError {
			style = errorStyle
		}
		status = style.Render(" " + a.status)
	}

	left := footerStyle.Render(helpView)
	right := a.timer.indicator() + status

	gap := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	spacer := lipgloss.NewStyle().Width(gap).Render("")

	return lipgloss.JoinHorizontal(lipgloss.Bottom, left, spacer, right)
}

var exportFormats = []string{"JSON backup", "CSV of tasks", "PDF of this week"}

func (a App) renderExportPicker() string {
	title := titleStyle.Render("Export")
	var rows []string
	rows = append(rows, title)
	rows = append(rows, "")
	for i, f := range exportFormats {
		cursor := "  "
		style := normalItemStyle
		if i == a.exportCursor {
			cursor = "> "
			style = selectedItemStyle
		}
		rows = append(rows, style.Render(cursor+f))
	}
	rows = append(rows, "")
	rows = append(rows, mutedStyle.Render("  enter: export  esc: cancel"))

	w := a.width - 4
	return activePanelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (a App) updateExportPicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Up):
		if a.exportCursor > 0 {
			a.exportCursor--
		}
	case key.Matches(msg, keys.Down):
		if a.exportCursor < len(exportFormats)-1 {
			a.exportCursor++
		}
	case key.Matches(msg, keys.Enter):
		a.exportPicking = false
		return a, a.doExport(a.exportCursor)
	case key.Matches(msg, keys.Back):
		a.exportPicking = false
	}
	return a, nil
}

func (a App) doExport(format int) tea.Cmd {
	d := a.planner.Snapshot()
	dir := a.opts.ExportDir
	dateStr := today(a.planner)
	return func() tea.Msg {
		var path string
		var err error
		switch format {
		case 0:
			path = filepath.Join(dir, export.DefaultFileName)
			err = export.ToJSON(d, path)
		case 1:
			path = filepath.Join(dir, fmt.Sprintf("planr-tasks-%s.csv", dateStr))
			err = export.ToCSV(d, path)
		default:
			var week string
			week, err = datekey.WeekKeyFor(dateStr, d.Preferences.WeekStartsOn)
			if err == nil {
				path = filepath.Join(dir, fmt.Sprintf("planr-week-%s.pdf", week))
				err = export.WeeklyPDF(d, week, path)
			}
		}
		if err != nil {
			a.log.Error("export failed", "error", err, "path", path)
			return statusMsg{text: fmt.Sprintf("Export error: %v", err), isError: true}
		}
		return exportDoneMsg{path: path}
	}
}
