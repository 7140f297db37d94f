// Package cli wires configuration, storage and the planner into the planr
// command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/sadopc/planr/internal/config"
	"github.com/sadopc/planr/internal/datekey"
	"github.com/sadopc/planr/internal/logging"
	"github.com/sadopc/planr/internal/planner"
	"github.com/sadopc/planr/internal/sound"
	"github.com/sadopc/planr/internal/store"
	"github.com/sadopc/planr/internal/tui"
)

// Options injects dependencies, mainly for tests. Zero values select the
// real implementations.
type Options struct {
	// Store replaces the database opened from the configured path. The
	// caller keeps ownership.
	Store *store.Store
	Now   func() time.Time
	// IsTerminal reports whether the TUI can take over stdout.
	IsTerminal func() bool
}

type app struct {
	opts Options

	configPath string
	dbPath     string

	cfg       *config.Config
	log       *slog.Logger
	logCloser io.Closer
	store     *store.Store
	planner   *planner.Planner
}

// NewRootCmd builds the command tree. Running it without a subcommand
// opens the TUI.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.IsTerminal == nil {
		opts.IsTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	}
	a := &app{opts: opts}

	root := &cobra.Command{
		Use:   "planr",
		Short: "A daily planner with five ranked tasks, weekly goals, a pledge and a pomodoro timer.",
		Long: `planr keeps five ranked tasks per day, a weekly plan, a five-day pledge
and a pomodoro timer in a local SQLite database.

Run without arguments to open the terminal UI.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return a.teardown()
		},
		RunE: a.runTUI,
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default: ./config.yaml or ~/.config/planr/config.yaml)")
	root.PersistentFlags().StringVar(&a.dbPath, "db", "", "database path (overrides database_path)")

	root.AddCommand(
		a.exportCmd(),
		a.importCmd(),
		a.resetCmd(),
		a.restoreCmd(),
		a.focusCmd(),
		a.statusCmd(),
		a.taskCmd(),
		a.weekCmd(),
		a.pledgeCmd(),
	)
	return root
}

// Execute runs the planr command line against os.Args.
func Execute() error {
	return NewRootCmd(Options{}).Execute()
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.dbPath != "" {
		cfg.DatabasePath = a.dbPath
	}
	a.cfg = cfg

	// The TUI owns the terminal, so it logs to a file.
	if cmd.Parent() == nil {
		a.log, a.logCloser, err = logging.Open(cfg.LogFile, cfg.LogLevel)
		if err != nil {
			return err
		}
	} else {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return err
		}
		a.log = logging.New(cmd.ErrOrStderr(), level)
	}

	a.store = a.opts.Store
	if a.store == nil {
		a.store, err = store.New(cfg.DatabasePath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
	}

	a.planner = planner.New(
		planner.WithClock(a.opts.Now),
		planner.WithPersister(a.store),
		planner.WithLogger(a.log),
	)
	raw, err := a.store.LoadState()
	if err != nil {
		return err
	}
	// An unreadable record falls back to defaults; Load has logged why.
	_ = a.planner.Load(raw)
	return nil
}

func (a *app) teardown() error {
	var errs []error
	if a.store != nil && a.opts.Store == nil {
		errs = append(errs, a.store.Close())
	}
	if a.logCloser != nil {
		errs = append(errs, a.logCloser.Close())
	}
	return errors.Join(errs...)
}

func (a *app) today() string {
	return datekey.Key(a.planner.Now())
}

// cue returns the audible signal, or nil when the config turns the bell off.
func (a *app) cue(w io.Writer) func() {
	if !a.cfg.Bell {
		return nil
	}
	return sound.Cue(w)
}

func (a *app) runTUI(cmd *cobra.Command, _ []string) error {
	if !a.opts.IsTerminal() {
		return errors.New("the planr UI needs an interactive terminal; see `planr --help` for commands")
	}
	m := tui.NewApp(a.planner, tui.Options{
		TickInterval: a.cfg.TickInterval,
		Cue:          a.cue(os.Stdout),
		ExportDir:    a.cfg.ExportDir,
		Logger:       a.log,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
