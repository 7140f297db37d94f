package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sadopc/planr/internal/engine"
	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/timer"
)

func (a *app) focusCmd() *cobra.Command {
	var (
		task, work, brk int
		date            string
	)
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Run a pomodoro in the terminal without the UI",
		Long: `Run a pomodoro in the terminal without the UI.

With --task the session counts toward that task of the day (1-5). A paused
session is resumed instead of starting a new one. Ctrl-C pauses.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if task < 0 || task > model.TaskCount {
				return fmt.Errorf("task must be between 1 and %d", model.TaskCount)
			}
			if date == "" {
				date = a.today()
			}
			if err := a.startFocus(date, task, work, brk); err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			err := engine.Run(ctx, a.planner, engine.Config{
				Interval: a.cfg.TickInterval,
				Cue:      a.cue(out),
				OnTick: func(ev timer.Event) {
					switch ev {
					case timer.EventWorkComplete:
						fmt.Fprintln(out, "\nWork session complete. Break started.")
					case timer.EventBreakComplete:
						fmt.Fprintln(out, "\nBreak over.")
					default:
						t := a.planner.Snapshot().Timer
						fmt.Fprintf(out, "\r%-5s %s", t.Phase, timer.Format(timer.SecondsLeft(t, a.planner.Now())))
					}
				},
			})
			if errors.Is(err, context.Canceled) {
				a.planner.Pause()
				fmt.Fprintln(out, "\nPaused. Run `planr focus` again to resume.")
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&task, "task", "t", 0, "task number (1-5); 0 for a session not tied to a task")
	cmd.Flags().StringVar(&date, "date", "", "day of the task (default today)")
	cmd.Flags().IntVar(&work, "work", 0, "work minutes (default from preferences)")
	cmd.Flags().IntVar(&brk, "break", 0, "break minutes (default from preferences)")
	return cmd
}

// startFocus leaves the planner with a running timer or explains why not.
func (a *app) startFocus(date string, task, work, brk int) error {
	switch a.planner.Snapshot().Timer.Status {
	case model.StatusRunning:
		return nil
	case model.StatusPaused:
		a.planner.Resume()
		return nil
	}

	var s timer.Session
	if work > 0 {
		s.WorkMinutes = &work
	}
	if brk > 0 {
		s.BreakMinutes = &brk
	}

	var ok bool
	if task == 0 {
		ok = a.planner.StartGenericWork(s)
	} else {
		ok = a.planner.StartWorkOnTask(date, task-1, s)
	}
	if ok {
		return nil
	}
	return errors.New(a.planner.Snapshot().Timer.LastError)
}
