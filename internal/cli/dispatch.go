// Package cli parses the command line and runs one command against the task file.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/logging"
	"todo/internal/metrics"
	"todo/internal/remote"
	"todo/internal/store"
)

// RemoteFactory creates a remote.Service from config.
// Used to inject the backend during dispatch.
type RemoteFactory func(ctx context.Context, cfg *config.Config) (remote.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  RemoteFactory
}

// NewDispatcher creates a new dispatcher with the given registry and remote factory.
func NewDispatcher(registry *commands.Registry, factory RemoteFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments, runs exactly one command, and returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> list
	if len(args) == 0 {
		args = []string{"list"}
	}

	cmdName := args[0]
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UsageError
	}

	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UsageError
	}
	return d.dispatchCommand(ctx, cmd, args[1:], out, errOut)
}

type commonFlags struct {
	configDir string
	file      string
	quiet     bool
	debug     bool
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var common commonFlags
	fs.StringVar(&common.configDir, "config", "", "")
	fs.StringVar(&common.file, "file", "", "")
	fs.BoolVar(&common.quiet, "quiet", false, "")
	fs.BoolVar(&common.debug, "debug", false, "")
	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %s\n", flagErrorMessage(err))
		return exitcode.UsageError
	}

	cfg, err := config.New(common.configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.Failure
	}
	if common.file != "" {
		cfg.File = common.file
	}
	cfg.Quiet = common.quiet
	cfg.Debug = common.debug

	env := &commands.Env{
		Config: cfg,
		Log:    logging.New(errOut, cfg.Debug),
	}

	rec := metrics.New()
	start := time.Now()
	code := d.runCommand(ctx, cmd, env, fs.Args(), out, errOut)

	rec.ObserveCommand(cmd.Name(), code == exitcode.Success, time.Since(start))
	if env.List != nil {
		rec.SetTasks(env.List.Counts())
	}
	if cfg.MetricsFile != "" {
		if err := rec.WriteFile(cfg.MetricsFile); err != nil {
			env.Log.Warn("could not write metrics", "path", cfg.MetricsFile, "err", err)
		}
	}
	return code
}

// runCommand loads what cmd needs, then runs it.
func (d *Dispatcher) runCommand(ctx context.Context, cmd commands.Command, env *commands.Env, args []string, out, errOut io.Writer) int {
	cfg := env.Config

	if cmd.NeedsList() {
		list, err := store.Load(cfg.File)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.Failure
		}
		env.List = list
		env.Log.Debug("loaded task file", "path", cfg.File, "count", list.Len())
	}

	if cmd.NeedsRemote() {
		if d.factory == nil {
			fmt.Fprintln(errOut, "error: no remote backend configured")
			return exitcode.BackendError
		}
		svc, err := d.factory(ctx, cfg)
		if err != nil {
			if errors.Is(err, remote.ErrAuth) {
				fmt.Fprintf(errOut, "error: %v\n", err)
				return exitcode.AuthError
			}
			fmt.Fprintf(errOut, "error: backend error: %v\n", err)
			return exitcode.BackendError
		}
		env.Remote = svc
	}

	env.Log.Debug("running command", "command", cmd.Name(), "args", len(args))
	return cmd.Run(ctx, env, args, out, errOut)
}

// flagErrorMessage rewrites flag package errors into CLI messages.
func flagErrorMessage(err error) string {
	msg := err.Error()
	if name, ok := strings.CutPrefix(msg, "flag provided but not defined: "); ok {
		return "unknown flag: " + name
	}
	return msg
}
