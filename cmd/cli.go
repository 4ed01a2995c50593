package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/jessevdk/go-flags"
)

// AppName is the program name used in help output.
const AppName = "builder-vault"

// Version is set at link time with -ldflags "-X .../cmd.Version=...".
var Version = "dev"

// Arguments is the outcome of a successful parse.
type Arguments struct {
	Command string
	// ConfigPath is nil unless --config was given; an empty value still
	// counts as an explicit request.
	ConfigPath *string
}

// UsageError means the command line could not be understood. Usage has
// already been printed when it is returned.
type UsageError struct {
	Code    int
	Message string
}

func (e *UsageError) Error() string { return e.Message }

// Run is the entry point for the CLI. It never returns.
func Run(args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	outcome := NewLauncher().Launch(ctx, args)
	stop()
	os.Exit(outcome.Code)
}

// Parse reads args against Options. Help and version requests are reported
// as a *UsageError with code 0 after printing; any other problem prints the
// error and the generated help to out and returns a *UsageError with code 1.
func Parse(args []string, out io.Writer) (Arguments, error) {
	opts := &Options{}
	parser := flags.NewParser(opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = AppName
	parser.LongDescription = "Manage a Habitat-Builder vault server"
	// The command requirement is enforced below so that --version works alone.
	parser.SubcommandsOptional = true

	rest, err := parser.ParseArgs(args)
	if err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			fmt.Fprintln(out, flagsErr.Message)
			return Arguments{}, &UsageError{Code: 0}
		}
		return Arguments{}, usageFailure(parser, out, err.Error())
	}
	if opts.Version {
		fmt.Fprintf(out, "%s %s\n", AppName, Version)
		return Arguments{}, &UsageError{Code: 0}
	}
	if len(rest) > 0 {
		return Arguments{}, usageFailure(parser, out, fmt.Sprintf("unexpected argument %q", rest[0]))
	}
	if parser.Active == nil {
		return Arguments{}, usageFailure(parser, out, "a command is required")
	}
	parsed := Arguments{Command: parser.Active.Name}
	if option := parser.FindOptionByLongName("config"); option != nil && option.IsSet() {
		parsed.ConfigPath = &opts.Config
	}
	return parsed, nil
}

func usageFailure(parser *flags.Parser, out io.Writer, message string) *UsageError {
	fmt.Fprintf(out, "error: %s\n\n", message)
	parser.WriteHelp(out)
	return &UsageError{Code: 1, Message: message}
}
