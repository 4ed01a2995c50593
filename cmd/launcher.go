package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/viant/builder-vault/vault/config"
	"github.com/viant/builder-vault/vault/server"
)

// Outcome is what the process exits with.
type Outcome struct {
	Code    int
	Message string
}

// Success is the outcome of a run that completed without error.
func Success() Outcome { return Outcome{} }

// Failure is the outcome of a run that stopped on err.
func Failure(err error) Outcome { return Outcome{Code: 1, Message: err.Error()} }

// ServerFunc runs the vault server with a resolved configuration.
type ServerFunc func(ctx context.Context, cfg config.Config) error

// Launcher sequences parse, resolve and server run. Every failure is final.
type Launcher struct {
	stdout   io.Writer
	resolver *config.Resolver
	server   ServerFunc
}

// LauncherOption customises a Launcher.
type LauncherOption func(*Launcher)

// WithStdout sets where usage and failure messages are printed.
func WithStdout(w io.Writer) LauncherOption {
	return func(l *Launcher) {
		l.stdout = w
	}
}

// WithResolver sets the configuration resolver.
func WithResolver(r *config.Resolver) LauncherOption {
	return func(l *Launcher) {
		l.resolver = r
	}
}

// WithServer replaces the server entry point.
func WithServer(fn ServerFunc) LauncherOption {
	return func(l *Launcher) {
		l.server = fn
	}
}

// NewLauncher creates a launcher printing to stdout, resolving against
// config.DefaultPath and running server.Run unless options say otherwise.
func NewLauncher(opts ...LauncherOption) *Launcher {
	l := &Launcher{}
	for _, opt := range opts {
		opt(l)
	}
	if l.stdout == nil {
		l.stdout = os.Stdout
	}
	if l.resolver == nil {
		l.resolver = config.NewResolver()
	}
	if l.server == nil {
		l.server = server.Run
	}
	return l
}

// Launch runs the process lifecycle for args and returns the exit outcome.
// Usage problems end the run before any configuration is resolved.
func (l *Launcher) Launch(ctx context.Context, args []string) Outcome {
	parsed, err := Parse(args, l.stdout)
	if err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			return Outcome{Code: usageErr.Code, Message: usageErr.Message}
		}
		return l.fail(err)
	}
	fields := log.Fields{"command": parsed.Command}
	if parsed.ConfigPath != nil {
		fields["config"] = *parsed.ConfigPath
	}
	log.WithFields(fields).Debug("parsed arguments")

	cfg, err := l.resolver.Resolve(ctx, parsed.ConfigPath)
	if err != nil {
		return l.fail(err)
	}
	if err := l.server(ctx, cfg); err != nil {
		return l.fail(err)
	}
	return Success()
}

func (l *Launcher) fail(err error) Outcome {
	outcome := Failure(err)
	fmt.Fprintln(l.stdout, outcome.Message)
	return outcome
}
