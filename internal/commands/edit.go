package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Replace a task description" }
func (c *EditCmd) Usage() string     { return "todo edit <id> <description...>" }
func (c *EditCmd) NeedsList() bool   { return true }
func (c *EditCmd) NeedsRemote() bool { return false }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: id required")
		return exitcode.UsageError
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UsageError
	}
	if len(args) < 2 {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UsageError
	}

	if !env.List.Edit(id, joinArgs(args[1:])) {
		env.Log.Debug("no task matched", "id", id)
	}

	if !commit(env, out, errOut) {
		return exitcode.Failure
	}
	confirm(env, out, "Task edited.")
	return exitcode.Success
}
