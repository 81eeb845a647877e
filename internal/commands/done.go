package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/exitcode"
)

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return nil }
func (c *DoneCmd) Synopsis() string  { return "Mark a task completed" }
func (c *DoneCmd) Usage() string     { return "todo done <id>" }
func (c *DoneCmd) NeedsList() bool   { return true }
func (c *DoneCmd) NeedsRemote() bool { return false }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	id, code, ok := idArg(args, errOut)
	if !ok {
		return code
	}

	if !env.List.MarkDone(id) {
		env.Log.Debug("no task matched", "id", id)
	}

	if !commit(env, out, errOut) {
		return exitcode.Failure
	}
	confirm(env, out, "Task marked as done.")
	return exitcode.Success
}
