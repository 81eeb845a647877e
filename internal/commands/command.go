// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"github.com/charmbracelet/log"

	"todo/internal/config"
	"todo/internal/remote"
	"todo/internal/store"
	"todo/internal/todo"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsList returns true if the task file must be loaded before Run.
	NeedsList() bool

	// NeedsRemote returns true if the command talks to Google Tasks.
	NeedsRemote() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with positional arguments left after flag
	// parsing and returns the exit code.
	Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int
}

// Env is the state shared with a command for one invocation.
type Env struct {
	Config *config.Config
	Log    *log.Logger

	// List is the content of Config.File. Nil unless NeedsList.
	List *todo.List

	// Remote is nil unless NeedsRemote.
	Remote remote.Service
}

// Commit writes List back to the task file.
func (e *Env) Commit() error {
	if err := store.Save(e.Config.File, e.List); err != nil {
		return err
	}
	e.Log.Debug("saved task file", "path", e.Config.File, "count", e.List.Len())
	return nil
}
