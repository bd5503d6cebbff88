// notify - run a command (or show a message) and raise a desktop notification

// Package cli provides the Cobra-based command line for notify.
//
// notify takes either --message TEXT, which is shown as a notification, or a
// trailing command line, which is run through the shell and reported on when
// it finishes. Exactly one of the two is required.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ariel-frischer/notify/internal/app"
	"github.com/ariel-frischer/notify/internal/build"
	"github.com/ariel-frischer/notify/internal/config"
	"github.com/ariel-frischer/notify/internal/invocation"
	"github.com/ariel-frischer/notify/internal/logging"
	"github.com/ariel-frischer/notify/internal/notify"
	"github.com/ariel-frischer/notify/internal/runner"
	"github.com/ariel-frischer/notify/internal/sound"
)

// dependencies builds the collaborators the driver needs. Tests replace them.
type dependencies struct {
	newNotifier func(cfg *config.Configuration, logger *slog.Logger) app.Notifier
	newRunner   func(cfg *config.Configuration, logger *slog.Logger) app.CommandRunner
}

func defaultDependencies() dependencies {
	return dependencies{
		newNotifier: func(cfg *config.Configuration, logger *slog.Logger) app.Notifier {
			return notify.New(cfg.NotifierCmd, logger)
		},
		newRunner: func(cfg *config.Configuration, logger *slog.Logger) app.CommandRunner {
			return runner.New(cfg.Shell, logger)
		},
	}
}

type rootOptions struct {
	message    string
	sound      sound.Sound
	soundValue *sound.Value
	configPath string
	debug      bool
}

// messageArg returns the --message value, or nil when the flag was not given.
func (o *rootOptions) messageArg(cmd *cobra.Command) *string {
	if !cmd.Flags().Changed("message") {
		return nil
	}
	m := o.message
	return &m
}

// NewRootCommand creates the notify command.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultDependencies())
}

func newRootCommand(deps dependencies) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "notify [flags] (--message TEXT | COMMAND [ARGS...])",
		Short: "Run a command and send a desktop notification when it finishes",
		Long: `Run a command and send a desktop notification when it finishes.

With --message, the text is shown as a notification and nothing is run.
Otherwise the remaining arguments are joined with spaces and run through the
shell. On success the command line is shown as the notification; on failure a
"Run Failed" notification is sent and notify exits with the command's status.`,
		Example: `  # Notify when a build finishes
  notify make build

  # Shell syntax is passed through
  notify "go test ./... | tee test.log"

  # Just show a message with a different sound
  notify -s Glass -m "coffee is ready"`,
		Version: build.Version,
		Args: func(cmd *cobra.Command, args []string) error {
			_, err := invocation.Resolve(opts.messageArg(cmd), args, sound.Default)
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// Errors past this point are outcomes, not usage mistakes
			cmd.SilenceUsage = true
			return run(cmd, args, opts, deps)
		},
	}

	cmd.SetVersionTemplate(build.Info())

	opts.soundValue = sound.NewValue(sound.Default, &opts.sound)
	flags := cmd.Flags()
	flags.VarP(opts.soundValue, "sound", "s", "Notification sound, one of: "+strings.Join(sound.Names(), ", "))
	flags.StringVarP(&opts.message, "message", "m", "", "Show this message instead of running a command")
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to an additional JSON config file")
	flags.BoolVarP(&opts.debug, "debug", "d", false, "Enable debug logging")
	// Everything after the first positional argument belongs to the command
	flags.SetInterspersed(false)

	return cmd
}

func run(cmd *cobra.Command, args []string, opts *rootOptions, deps dependencies) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	level := logging.ParseLevel(cfg.LogLevel)
	if opts.debug {
		level = slog.LevelDebug
	}
	logger := logging.Init(cmd.ErrOrStderr(), level)

	s := cfg.Sound()
	if opts.soundValue.Changed() {
		s = opts.sound
	}

	plan, err := invocation.Resolve(opts.messageArg(cmd), args, s)
	if err != nil {
		return err
	}
	logger.Debug("resolved invocation", "action", fmt.Sprintf("%T", plan.Action), "sound", plan.Sound.String())

	driver := app.NewDriver(deps.newNotifier(cfg, logger), deps.newRunner(cfg, logger), logger)
	if code := driver.Run(plan); code != ExitSuccess {
		return NewExitError(code)
	}
	return nil
}

// Execute runs the root command against os.Args. Errors other than a
// command's exit status are printed to stderr.
func Execute() error {
	cmd := NewRootCommand()
	cmd.SilenceErrors = true
	err := cmd.Execute()
	if err != nil && !isExitError(err) {
		printError(os.Stderr, err)
	}
	return err
}

func printError(w io.Writer, err error) {
	color.New(color.FgRed).Fprintln(w, "Error:", err)
}
