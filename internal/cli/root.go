// wintoast - desktop notifications from the command line

// Package cli provides the cobra root command for wintoast. Cobra's own flag
// parsing is disabled: the raw argument vector goes to internal/args, whose
// permissive rules accept options and bare words in any order.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/wintoast/wintoast/internal/args"
	"github.com/wintoast/wintoast/internal/config"
	"github.com/wintoast/wintoast/internal/notify"
)

// SinkFactory builds the sink a parsed request is displayed on.
// warnings receives per-element warnings for the user.
type SinkFactory func(cfg *config.Configuration, logger *slog.Logger, warnings io.Writer) notify.Sink

type deps struct {
	loadConfig func() (*config.Configuration, error)
	newSink    SinkFactory
}

func defaultDeps() deps {
	return deps{
		loadConfig: func() (*config.Configuration, error) {
			return config.Load(config.LocalConfigPath())
		},
		newSink: func(cfg *config.Configuration, logger *slog.Logger, warnings io.Writer) notify.Sink {
			return notify.NewDispatcher(cfg.Notify(), logger, warnings)
		},
	}
}

func newRootCmd(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wintoast [options] [title] [message]",
		Short: "Show a desktop notification",
		Long: `wintoast - desktop notifications from the command line

Options and bare words may appear in any order. Unknown options are
treated as text, and a repeated option keeps its last value.`,
		Example: `  # Title and message as bare words
  wintoast "Build finished" "All 42 tests passed"

  # Options with an icon and a click target
  wintoast -t Deploy -m "v1.4.2 is live" -l ~/icons/rocket.png -a https://example.com/releases`,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, argv []string) error {
			return run(cmd.Context(), d, argv, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}
	return cmd
}

func run(ctx context.Context, d deps, argv []string, stdout, stderr io.Writer) error {
	result := args.Parse(argv)
	if result.Help || result.Request.IsEmpty() {
		printUsage(stdout)
		return nil
	}

	cfg, err := d.loadConfig()
	if err != nil {
		return NewExitError(ExitFailure, err)
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})).
		With("invocation", uuid.NewString())
	logger.DebugContext(ctx, "parsed arguments", "argc", len(argv), "title", result.Request.Title())

	sink := d.newSink(cfg, logger, stderr)
	if err := sink.Display(ctx, result.Request); err != nil {
		return NewExitError(ExitFailure, err)
	}
	return nil
}

var errorPrefix = color.New(color.FgRed, color.Bold)

// Run executes wintoast with argv (without the program name) and returns the
// process exit code. Errors are printed to stderr as "Error: <message>".
func Run(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	return runWith(ctx, defaultDeps(), argv, stdout, stderr)
}

func runWith(ctx context.Context, d deps, argv []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(d)
	// A nil slice makes cobra fall back to os.Args.
	if argv == nil {
		argv = []string{}
	}
	cmd.SetArgs(argv)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		errorPrefix.Fprint(stderr, "Error:")
		fmt.Fprintf(stderr, " %s\n", err)
		return ExitCode(err)
	}
	return ExitSuccess
}

// Execute runs wintoast with the process arguments. An interrupt cancels the
// context passed to the sink.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
}
