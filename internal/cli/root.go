// Package cli implements the stepper command line.
//
// Commands load a step sequence (from flags, a sequence file, or inline
// configuration), build a [steps.Controller] over it, and then show it, walk it
// with scripted actions, look up indexes, or hand it to the interactive wizard.
//
// Key types:
//   - [App] holds configuration and the logger shared by all commands
//   - [ExitError] carries a non-zero exit code out of a command
//
// [RunWithConfig] is the testable entry point; [Execute] wraps it for main.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"stepper/internal/config"
	"stepper/internal/logging"
	"stepper/internal/render"
	"stepper/internal/sequence"
	"stepper/internal/steps"
)

// Version is reported by --version. Overridden at build time with -ldflags.
var Version = "dev"

// errNoSequence is returned when no step source is configured at all.
var errNoSequence = errors.New("no step sequence: pass --steps or --sequence, set sequence.steps in the config, or add steps.yaml to the working directory")

// App holds the dependencies shared by every command.
type App struct {
	// Config is the loaded configuration.
	Config *config.Config

	// Logger receives structured diagnostics. Replaced in the root command's
	// pre-run hook with one honoring --log-level, writing to the command's stderr.
	Logger *slog.Logger

	flags globalFlags
}

// globalFlags are the persistent flags of the root command.
type globalFlags struct {
	configPath string
	sequence   string
	steps      []string
	circular   bool
	initial    string
	noColor    bool
	layout     string
	logLevel   string
}

// NewApp creates an [App] with the given configuration and a discarding logger.
func NewApp(cfg *config.Config) *App {
	return &App{Config: cfg, Logger: logging.Discard()}
}

// NewRootCommand builds the stepper command tree around app.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "stepper",
		Short: "Navigate ordered step sequences from the terminal",
		Long: `stepper tracks the current step of a wizard, tab set or carousel.

Steps come from --steps, a YAML/CSV sequence file, or the sequence section of
the config file. Navigation can wrap around (--circular) and start anywhere
(--initial).`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(cmd)
		},
	}

	f := root.PersistentFlags()
	f.StringVar(&app.flags.configPath, "config", "", "config file (default: user config dir or ./stepper.yaml)")
	f.StringVarP(&app.flags.sequence, "sequence", "s", "", "sequence file (.yaml, .yml or .csv)")
	f.StringSliceVar(&app.flags.steps, "steps", nil, "inline comma-separated step names")
	f.BoolVarP(&app.flags.circular, "circular", "c", false, "wrap around past the first and last step")
	f.StringVarP(&app.flags.initial, "initial", "i", "", "step to start on (default: first step)")
	f.BoolVar(&app.flags.noColor, "no-color", false, "disable colored output")
	f.StringVar(&app.flags.layout, "layout", "", `sequence layout: "bar" or "list"`)
	f.StringVar(&app.flags.logLevel, "log-level", "", "log level: DEBUG, INFO, WARN, ERROR")

	root.AddCommand(
		newShowCommand(app),
		newWalkCommand(app),
		newIndexCommand(app),
		newTUICommand(app),
	)

	return root
}

// setup reloads configuration when --config is given and builds the logger.
func (a *App) setup(cmd *cobra.Command) error {
	if a.flags.configPath != "" {
		cfg, err := config.NewLoader().LoadFromFile(a.flags.configPath)
		if err != nil {
			return err
		}
		a.Config = cfg
	}
	if a.Config == nil {
		a.Config = config.DefaultConfig()
	}

	level := a.Config.Log.Level
	if a.flags.logLevel != "" {
		level = a.flags.logLevel
	}
	a.Logger = logging.New(cmd.ErrOrStderr(), level)
	return nil
}

// loadController builds the controller every command works on.
//
// Step source precedence: --steps, then a sequence file (--sequence, the
// configured path, STEPPER_SEQUENCE_PATH, or auto-discovery), then inline
// sequence.steps from the config. Circular and initial settings come from the
// flags when set, else from the sequence file, else from the config.
func (a *App) loadController(cmd *cobra.Command) (*steps.Controller, error) {
	cfg := a.Config.Sequence

	def, err := a.loadDefinition()
	if err != nil {
		return nil, err
	}

	var opts []steps.Option
	if def.Circular == nil {
		opts = append(opts, steps.WithCircular(cfg.Circular))
	}
	if def.Initial == "" && cfg.Initial != "" {
		opts = append(opts, steps.WithInitialStep(cfg.Initial))
	}
	if cmd.Flags().Changed("circular") {
		opts = append(opts, steps.WithCircular(a.flags.circular))
	}
	if cmd.Flags().Changed("initial") {
		opts = append(opts, steps.WithInitialStep(a.flags.initial))
	}

	c, err := def.Controller(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build step controller: %w", err)
	}

	a.Logger.Debug("controller ready",
		"steps", c.Length(),
		"current", c.CurrentStep(),
		"circular", c.Circular(),
	)
	return c, nil
}

func (a *App) loadDefinition() (*sequence.Definition, error) {
	if len(a.flags.steps) > 0 {
		return &sequence.Definition{Steps: steps.Names(a.flags.steps...)}, nil
	}

	path := a.flags.sequence
	if path == "" {
		path = a.Config.Sequence.Path
	}
	if path = sequence.ResolvePath("", path); path != "" {
		def, err := sequence.NewReader(path).Read()
		if err != nil {
			return nil, err
		}
		a.Logger.Debug("loaded sequence file", "path", path, "steps", len(def.Steps))
		return def, nil
	}

	if len(a.Config.Sequence.Steps) > 0 {
		return &sequence.Definition{Steps: steps.Names(a.Config.Sequence.Steps...)}, nil
	}

	return nil, errNoSequence
}

// renderer builds a renderer for w from config and flags.
func (a *App) renderer(w io.Writer) (*render.Renderer, error) {
	out := a.Config.Output

	layoutName := out.Layout
	if a.flags.layout != "" {
		layoutName = a.flags.layout
	}
	layout, err := render.ParseLayout(layoutName)
	if err != nil {
		return nil, err
	}

	return render.New(w, render.Options{
		Color:        out.Color && !a.flags.noColor,
		Layout:       layout,
		ActiveMarker: out.ActiveMarker,
	}), nil
}

// ExecuteResult is the outcome of one CLI invocation.
type ExecuteResult struct {
	ExitCode int
	Err      error
}

// RunWithConfig runs the command tree with args against cfg and reports the
// exit code instead of exiting. Errors other than [ExitError] are printed to
// errOut.
func RunWithConfig(ctx context.Context, args []string, cfg *config.Config, out, errOut io.Writer) ExecuteResult {
	app := NewApp(cfg)
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.ExecuteContext(ctx); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		fmt.Fprintf(errOut, "Error: %v\n", err)
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{ExitCode: 0}
}

// Execute loads configuration, runs the CLI with os.Args and exits the process.
func Execute() {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	result := RunWithConfig(ctx, os.Args[1:], cfg, os.Stdout, os.Stderr)
	stop()

	os.Exit(result.ExitCode)
}
