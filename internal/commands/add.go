package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return nil }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "todo add <description...>" }
func (c *AddCmd) NeedsList() bool   { return true }
func (c *AddCmd) NeedsRemote() bool { return false }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: description required")
		return exitcode.UsageError
	}

	task := env.List.Add(joinArgs(args))
	env.Log.Debug("added task", "id", task.ID)

	if !commit(env, out, errOut) {
		return exitcode.Failure
	}
	confirm(env, out, "Task added.")
	return exitcode.Success
}
