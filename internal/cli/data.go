package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sadopc/planr/internal/datekey"
	"github.com/sadopc/planr/internal/export"
	"github.com/sadopc/planr/internal/store"
)

func (a *app) exportCmd() *cobra.Command {
	var out, format, date string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the planner to a JSON backup, a CSV of tasks, or a weekly PDF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := a.planner.Snapshot()
			if date == "" {
				date = a.today()
			}
			switch format {
			case "json":
				if out == "" {
					out = export.DefaultFileName
				}
				if err := export.ToJSON(d, out); err != nil {
					return err
				}
			case "csv":
				if out == "" {
					out = "planr-tasks.csv"
				}
				if err := export.ToCSV(d, out); err != nil {
					return err
				}
			case "pdf":
				week, err := datekey.WeekKeyFor(date, d.Preferences.WeekStartsOn)
				if err != nil {
					return err
				}
				if out == "" {
					out = fmt.Sprintf("planr-week-%s.pdf", week)
				}
				if err := export.WeeklyPDF(d, week, out); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown format %q (want json, csv or pdf)", format)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported to %s\n", out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file")
	cmd.Flags().StringVarP(&format, "format", "f", "json", "json, csv or pdf")
	cmd.Flags().StringVar(&date, "date", "", "any day of the week to print (pdf only, default today)")
	return cmd
}

func (a *app) importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace all planner data with a JSON export",
		Long: `Replace all planner data with a JSON export.

The file is validated first; on any problem nothing changes, including the
backup. After a successful import the replaced data is kept as the backup.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read import file: %w", err)
			}
			prev, err := a.store.LoadState()
			if err != nil {
				return err
			}
			if err := a.planner.ImportState(string(raw)); err != nil {
				return err
			}
			if err := a.store.SaveBackup(prev); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %s\n", filepath.Base(args[0]))
			return nil
		},
	}
}

func (a *app) resetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete all planner data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !yes {
				return errors.New("refusing to delete all data without --yes")
			}
			if err := a.store.Backup(); err != nil {
				return err
			}
			a.planner.DeleteAllData()
			fmt.Fprintln(cmd.OutOrStdout(), "All data deleted.")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm deletion")
	return cmd
}

func (a *app) restoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "restore",
		Short: "Bring back the data replaced by the last import or reset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw, err := a.store.LoadBackup()
			if err != nil {
				return err
			}
			if raw == nil {
				return errors.New("no backup to restore")
			}
			if err := a.planner.ImportState(string(raw)); err != nil {
				return fmt.Errorf("restore backup: %w", err)
			}
			if err := a.store.Delete(store.BackupKey); err != nil {
				return err
			}
			a.log.Info("backup restored")
			fmt.Fprintln(cmd.OutOrStdout(), "Backup restored.")
			return nil
		},
	}
}
