// Package app wires the configuration layer, the separator library, and the
// output layer into the numsep command.
package app

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/pboivin/numsep"
	"github.com/pboivin/numsep/internal/apperrors"
	"github.com/pboivin/numsep/internal/cli"
	"github.com/pboivin/numsep/internal/config"
)

// Application represents the numsep application instance.
type Application struct {
	Config    config.AppConfig
	Policy    numsep.SeparatorPolicy
	In        io.Reader
	ErrWriter io.Writer
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithInput sets the reader used when no value arguments are given.
// The default is os.Stdin.
func WithInput(r io.Reader) AppOption {
	return func(a *Application) { a.In = r }
}

// New creates a new Application instance by parsing command-line arguments
// and resolving the separator policy. Configuration problems are reported on
// errWriter and returned.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter, In: os.Stdin}
	for _, opt := range opts {
		opt(app)
	}

	programName := "numsep"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		if !IsHelpError(err) {
			cli.DisplayError(errWriter, err)
		}
		return nil, err
	}

	policy, err := config.BuildPolicy(cfg)
	if err != nil {
		cli.DisplayError(errWriter, err)
		return nil, err
	}

	app.Config = cfg
	app.Policy = policy
	return app, nil
}

// Run formats the configured values and returns the process exit code.
// Values come from the positional arguments, or from the input stream one
// per line when no arguments were given.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	logger := zerolog.Nop()
	if a.Config.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		logger = zerolog.New(zerolog.ConsoleWriter{Out: a.ErrWriter}).With().Timestamp().Logger()
	}
	logger.Debug().
		Str("policy", a.Config.Policy).
		Str("resolved", cli.FormatPolicySummary(a.Policy)).
		Msg("separator policy resolved")

	if len(a.Config.Args) > 0 {
		return a.runArgs(out, logger)
	}
	return a.runStream(ctx, out, logger)
}

// runArgs formats each positional argument in order.
func (a *Application) runArgs(out io.Writer, logger zerolog.Logger) int {
	for _, value := range a.Config.Args {
		formatted, err := a.Policy.FormatString(value)
		if err != nil {
			cli.DisplayError(a.ErrWriter, err)
			return apperrors.ExitCode(err)
		}
		logger.Debug().Str("input", value).Str("output", formatted).Msg("formatted value")
		cli.DisplayResult(out, formatted)
	}
	return apperrors.ExitSuccess
}

// runStream formats the input stream line by line.
func (a *Application) runStream(ctx context.Context, out io.Writer, logger zerolog.Logger) int {
	count := 0
	err := cli.StreamLines(ctx, a.In, func(line string) error {
		formatted, err := a.Policy.FormatString(line)
		if err != nil {
			return err
		}
		count++
		cli.DisplayResult(out, formatted)
		return nil
	})
	if err != nil {
		cli.DisplayError(a.ErrWriter, err)
		return apperrors.ExitCode(err)
	}
	logger.Debug().Int("lines", count).Msg("input stream drained")
	return apperrors.ExitSuccess
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}

// ExitCodeFor maps a startup error to the exit code main should use.
func ExitCodeFor(err error) int {
	return apperrors.ExitCode(err)
}
