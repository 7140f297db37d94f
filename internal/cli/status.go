package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/sadopc/planr/internal/greeting"
	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/pledge"
	"github.com/sadopc/planr/internal/quotes"
	"github.com/sadopc/planr/internal/timer"
)

func (a *app) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show today's tasks, the timer and the pledge",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), a.status())
			return nil
		},
	}
}

func (a *app) status() string {
	now := a.planner.Now()
	d := a.planner.Snapshot()
	today := a.today()
	entry, _ := d.Entry(today)

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", greeting.For(d.Onboarding.Name, now))
	fmt.Fprintf(&b, "%s\n\n", quotes.ForDate(now))

	fmt.Fprintf(&b, "Today (%s)\n", today)
	for i, t := range entry.Tasks {
		mark := " "
		if t.Done {
			mark = "x"
		}
		text := t.Text
		if text == "" {
			text = "-"
		}
		fmt.Fprintf(&b, "  [%s] %d. %s  %d/%d\n", mark, i+1, text, t.ActualPomodoros, t.TargetPomodoros)
	}
	if entry.ProductivityScore != nil {
		fmt.Fprintf(&b, "  Score: %d/10\n", *entry.ProductivityScore)
	}

	fmt.Fprintf(&b, "\nTimer: %s\n", timerLine(d.Timer, d, now))

	if d.Pledge != nil {
		state := fmt.Sprintf("%d/%d days", pledge.DaysDone(*d.Pledge), model.PledgeDays)
		if pledge.IsComplete(d.Pledge) {
			state = "complete"
		}
		fmt.Fprintf(&b, "Pledge: %s (%s)\n", d.Pledge.Text, state)
	}
	if d.LastImportedAt != "" {
		fmt.Fprintf(&b, "Last import: %s\n", d.LastImportedAt)
	}
	return b.String()
}

func timerLine(t model.TimerState, d model.AppData, now time.Time) string {
	line := fmt.Sprintf("%s %s, %s left", t.Phase, t.Status, timer.Format(timer.SecondsLeft(t, now)))
	if ref := t.ActiveTaskRef; ref != nil {
		if e, ok := d.Daily[ref.Date]; ok && e.Tasks[ref.TaskIndex].Text != "" {
			line += fmt.Sprintf(" on %q", e.Tasks[ref.TaskIndex].Text)
		}
	}
	if t.LastError != "" {
		line += " (" + t.LastError + ")"
	}
	return line
}
