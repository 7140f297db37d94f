package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/planr/internal/greeting"
	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/planner"
	"github.com/sadopc/planr/internal/quotes"
	"github.com/sadopc/planr/internal/timer"
)

type todayForm int

const (
	todayFormTask todayForm = iota
	todayFormNotes
)

type todayModel struct {
	planner *planner.Planner
	width   int
	height  int

	cursor int

	formActive bool
	form       *huh.Form
	formKind   todayForm
	formDate   string

	// Form values as pointers (survive value copies)
	text       *string
	target     *string
	notes      *string
	score      *int
	reflection *string
}

func newTodayModel(p *planner.Planner) todayModel {
	text, target, notes, reflection := "", "", "", ""
	score := 0
	return todayModel{
		planner:    p,
		text:       &text,
		target:     &target,
		notes:      &notes,
		score:      &score,
		reflection: &reflection,
	}
}

func (t *todayModel) setSize(w, h int) {
	t.width = w
	t.height = h
}

func (t todayModel) update(msg tea.Msg) (todayModel, tea.Cmd) {
	if t.formActive && t.form != nil {
		return t.updateForm(msg)
	}

	msg2, ok := msg.(tea.KeyMsg)
	if !ok {
		return t, nil
	}
	date := today(t.planner)

	switch {
	case key.Matches(msg2, keys.Up):
		if t.cursor > 0 {
			t.cursor--
		}
	case key.Matches(msg2, keys.Down):
		if t.cursor < model.TaskCount-1 {
			t.cursor++
		}
	case key.Matches(msg2, keys.Edit):
		return t.showTaskForm(date)
	case key.Matches(msg2, keys.Notes):
		return t.showNotesForm(date)
	case key.Matches(msg2, keys.Done):
		entry, _ := t.planner.Snapshot().Entry(date)
		done := !entry.Tasks[t.cursor].Done
		if !t.planner.SetTaskDone(date, t.cursor, done) {
			return t, statusError(t.planner.CanInteractWithTask(date, t.cursor).Reason)
		}
	case key.Matches(msg2, keys.Inc):
		t.planner.IncrementTaskPomodoro(date, t.cursor)
	case key.Matches(msg2, keys.Dec):
		t.planner.DecrementTaskPomodoro(date, t.cursor)
	case key.Matches(msg2, keys.Start):
		if !t.planner.StartWorkOnTask(date, t.cursor, timer.Session{}) {
			return t, statusError(t.planner.Snapshot().Timer.LastError)
		}
		return t, tea.Batch(status("Pomodoro started"), switchView(viewTimer))
	}
	return t, nil
}

func (t todayModel) showTaskForm(date string) (todayModel, tea.Cmd) {
	entry, _ := t.planner.Snapshot().Entry(date)
	task := entry.Tasks[t.cursor]
	*t.text = task.Text
	*t.target = strconv.Itoa(task.TargetPomodoros)

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title(fmt.Sprintf("Task %d", t.cursor+1)).
				Placeholder("Start with a verb").Value(t.text),
			huh.NewInput().Title("Target pomodoros").Value(t.target).Validate(validateInt),
		).Title(date),
	).WithShowHelp(true).WithShowErrors(true)

	t.formKind = todayFormTask
	t.formDate = date
	t.formActive = true
	return t, t.form.Init()
}

func (t todayModel) showNotesForm(date string) (todayModel, tea.Cmd) {
	entry, _ := t.planner.Snapshot().Entry(date)
	*t.notes = entry.Notes
	*t.reflection = entry.ProductivityReflection
	*t.score = 0
	if entry.ProductivityScore != nil {
		*t.score = *entry.ProductivityScore
	}

	scores := []huh.Option[int]{huh.NewOption("not set", 0)}
	for i := 1; i <= 10; i++ {
		scores = append(scores, huh.NewOption(strconv.Itoa(i), i))
	}

	t.form = huh.NewForm(
		huh.NewGroup(
			huh.NewText().Title("Notes").Value(t.notes),
			huh.NewSelect[int]().Title("Productivity score").Options(scores...).Value(t.score),
			huh.NewInput().Title("What helped or hurt today?").Value(t.reflection),
		).Title(date),
	).WithShowHelp(true).WithShowErrors(true)

	t.formKind = todayFormNotes
	t.formDate = date
	t.formActive = true
	return t, t.form.Init()
}

func (t todayModel) updateForm(msg tea.Msg) (todayModel, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.String() == "esc" {
			t.formActive = false
			t.form = nil
			return t, nil
		}
	}

	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	if t.form.State == huh.StateCompleted {
		t.formActive = false
		t.form = nil
		t.save()
		return t, nil
	}
	return t, cmd
}

func (t todayModel) save() {
	switch t.formKind {
	case todayFormTask:
		t.planner.SetTaskText(t.formDate, t.cursor, strings.TrimSpace(*t.text))
		var target *int
		if strings.TrimSpace(*t.target) != "" {
			n := atoiOr(*t.target, 1)
			target = &n
		}
		t.planner.SetTaskTarget(t.formDate, t.cursor, target)
	case todayFormNotes:
		t.planner.SetNotes(t.formDate, *t.notes)
		var score *int
		if *t.score > 0 {
			s := *t.score
			score = &s
		}
		t.planner.SetProductivityScore(t.formDate, score)
		t.planner.SetProductivityReflection(t.formDate, *t.reflection)
	}
}

func (t todayModel) view() string {
	if t.width < 20 {
		return "Terminal too small"
	}
	w := t.width - 4

	if t.formActive && t.form != nil {
		return activePanelStyle.Width(w).Render(t.form.View())
	}

	now := t.planner.Now()
	d := t.planner.Snapshot()
	date := today(t.planner)
	entry, _ := d.Entry(date)

	hello := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(greeting.For(d.Onboarding.Name, now)),
		mutedStyle.Italic(true).Render(quotes.ForDate(now).String()),
	)

	var rows []string
	rows = append(rows, titleStyle.Render("Today · "+now.Format("Monday, Jan 2")))
	rows = append(rows, "")
	for i, task := range entry.Tasks {
		rows = append(rows, t.renderTask(d, entry, i, task))
	}
	tasks := panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	score := mutedStyle.Render("not set")
	if entry.ProductivityScore != nil {
		score = highlightStyle.Render(fmt.Sprintf("%d/10", *entry.ProductivityScore))
	}
	notes := panelStyle.Width(w).Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Notes")+"  "+mutedStyle.Render("score ")+score,
		placeholder(entry.Notes, "Press n to add notes and score the day"),
		placeholder(entry.ProductivityReflection, ""),
	))

	return lipgloss.JoinVertical(lipgloss.Left, hello, "", tasks, notes)
}

func (t todayModel) renderTask(d model.AppData, entry model.DailyEntry, i int, task model.Task) string {
	cursor := "  "
	style := normalItemStyle
	if i == t.cursor {
		cursor = "> "
		style = selectedItemStyle
	}

	box := "[ ]"
	if task.Done {
		box = successStyle.Render("[x]")
	}

	label := fmt.Sprintf("%d. %s", i+1, placeholder(task.Text, "empty"))
	if task.Done {
		label = mutedStyle.Strikethrough(true).Render(fmt.Sprintf("%d. %s", i+1, task.Text))
	}

	var dots []string
	for n := 0; n < max(task.TargetPomodoros, task.ActualPomodoros); n++ {
		switch {
		case n < task.ActualPomodoros && n >= task.TargetPomodoros:
			dots = append(dots, warningStyle.Render("●"))
		case n < task.ActualPomodoros:
			dots = append(dots, successStyle.Render("●"))
		default:
			dots = append(dots, mutedStyle.Render("○"))
		}
	}

	extra := ""
	if ref := d.Timer.ActiveTaskRef; ref != nil && ref.Date == entry.Date && ref.TaskIndex == i && d.Timer.Status != model.StatusIdle {
		extra = accentStyle.Render("  ◐ in progress")
	} else if !task.Done && !t.planner.CanInteractWithTask(entry.Date, i).CanStart {
		extra = mutedStyle.Render("  locked")
	}

	return cursor + box + " " + style.Render(label) + "  " + strings.Join(dots, " ") + extra
}
