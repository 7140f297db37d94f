package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sadopc/planr/internal/model"
	"github.com/sadopc/planr/internal/pledge"
)

// position parses a 1-based position argument into a 0-based index.
func position(arg string, limit int) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 || n > limit {
		return 0, fmt.Errorf("position must be a number from 1 to %d, got %q", limit, arg)
	}
	return n - 1, nil
}

func (a *app) taskCmd() *cobra.Command {
	var date string
	day := func() string {
		if date == "" {
			return a.today()
		}
		return date
	}

	cmd := &cobra.Command{
		Use:   "task",
		Short: "Edit one of today's five tasks",
	}
	cmd.PersistentFlags().StringVar(&date, "date", "", "day to edit (default today)")

	set := &cobra.Command{
		Use:   "set N TEXT...",
		Short: "Set the text of task N",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			i, err := position(args[0], model.TaskCount)
			if err != nil {
				return err
			}
			if !a.planner.SetTaskText(day(), i, strings.Join(args[1:], " ")) {
				return fmt.Errorf("invalid date %q", day())
			}
			return nil
		},
	}

	target := &cobra.Command{
		Use:   "target N POMODOROS",
		Short: "Set how many pomodoros task N should take",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			i, err := position(args[0], model.TaskCount)
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("parse target: %w", err)
			}
			if !a.planner.SetTaskTarget(day(), i, &n) {
				return fmt.Errorf("invalid date %q", day())
			}
			return nil
		},
	}

	mark := func(done bool) func(*cobra.Command, []string) error {
		return func(_ *cobra.Command, args []string) error {
			i, err := position(args[0], model.TaskCount)
			if err != nil {
				return err
			}
			if a.planner.SetTaskDone(day(), i, done) {
				return nil
			}
			if check := a.planner.CanInteractWithTask(day(), i); check.Reason != "" {
				return errors.New(check.Reason)
			}
			return fmt.Errorf("invalid date %q", day())
		}
	}
	done := &cobra.Command{
		Use:   "done N",
		Short: "Mark task N done",
		Args:  cobra.ExactArgs(1),
		RunE:  mark(true),
	}
	undo := &cobra.Command{
		Use:   "undo N",
		Short: "Mark task N not done",
		Args:  cobra.ExactArgs(1),
		RunE:  mark(false),
	}

	cmd.AddCommand(set, target, done, undo)
	return cmd
}

func (a *app) weekCmd() *cobra.Command {
	var date string
	day := func() string {
		if date == "" {
			return a.today()
		}
		return date
	}

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Edit the plan of the current week",
	}
	cmd.PersistentFlags().StringVar(&date, "date", "", "any day of the week to edit (default today)")

	set := &cobra.Command{
		Use:   "set most|secondary|additional N TEXT...",
		Short: "Set one goal of the weekly plan",
		Args:  cobra.MinimumNArgs(3),
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args[2:], " ")
			var ok bool
			switch args[0] {
			case "most":
				i, err := position(args[1], model.MostImportantCount)
				if err != nil {
					return err
				}
				ok = a.planner.SetWeeklyMostImportant(day(), i, text)
			case "secondary":
				i, err := position(args[1], model.SecondaryCount)
				if err != nil {
					return err
				}
				ok = a.planner.SetWeeklySecondary(day(), i, text)
			case "additional":
				i, err := position(args[1], model.AdditionalCount)
				if err != nil {
					return err
				}
				ok = a.planner.SetWeeklyAdditional(day(), i, text)
			default:
				return fmt.Errorf("unknown list %q (want most, secondary or additional)", args[0])
			}
			if !ok {
				return fmt.Errorf("invalid date %q", day())
			}
			return nil
		},
	}

	commit := &cobra.Command{
		Use:   "commit TEXT...",
		Short: "Set the weekly commitment",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if !a.planner.SetWeeklyCommitment(day(), strings.Join(args, " ")) {
				return fmt.Errorf("invalid date %q", day())
			}
			return nil
		},
	}

	cmd.AddCommand(set, commit)
	return cmd
}

func (a *app) pledgeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pledge",
		Short: "Manage the five-day pledge",
	}

	set := &cobra.Command{
		Use:   "set TEXT...",
		Short: "Create the pledge or change its text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			in := pledge.Input{Text: &text, EnsureActions: []string{}}
			if cur := a.planner.Snapshot().Pledge; cur != nil {
				in = pledge.Input{
					Text:                  &text,
					SignatureName:         cur.SignatureName,
					StartDate:             cur.StartDate,
					ImportantBecauseLines: cur.ImportantBecauseLines[:],
					Reward:                cur.Reward,
					Consequence:           cur.Consequence,
					EnsureActions:         cur.EnsureActions,
				}
			} else {
				in.SignatureName = a.planner.Snapshot().Onboarding.Name
			}
			a.planner.SetPledge(in)
			return nil
		},
	}

	check := &cobra.Command{
		Use:   "toggle DAY",
		Short: "Check or uncheck a pledge day (1-5)",
		Long: `Check or uncheck a pledge day (1-5).

Days are checked in order and unchecked from the latest one back. A
completed pledge stays frozen until restarted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			i, err := position(args[0], model.PledgeDays)
			if err != nil {
				return err
			}
			if !a.planner.TogglePledgeDay(i) {
				return fmt.Errorf("day %d cannot be toggled now", i+1)
			}
			return nil
		},
	}

	restart := &cobra.Command{
		Use:   "restart",
		Short: "Clear the checklist",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if !a.planner.RestartPledge() {
				return errors.New("no pledge to restart")
			}
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete",
		Short: "Delete the pledge",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if !a.planner.DeletePledge() {
				return errors.New("no pledge to delete")
			}
			return nil
		},
	}

	cmd.AddCommand(set, check, restart, remove)
	return cmd
}
