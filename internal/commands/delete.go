package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/exitcode"
)

// DeleteCmd implements the delete command.
type DeleteCmd struct{}

func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Synopsis() string  { return "Delete tasks by id" }
func (c *DeleteCmd) Usage() string     { return "todo delete <id>" }
func (c *DeleteCmd) NeedsList() bool   { return true }
func (c *DeleteCmd) NeedsRemote() bool { return false }

func (c *DeleteCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DeleteCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	id, code, ok := idArg(args, errOut)
	if !ok {
		return code
	}

	// A missing id is not an error.
	removed := env.List.Delete(id)
	env.Log.Debug("deleted tasks", "id", id, "removed", removed)

	if !commit(env, out, errOut) {
		return exitcode.Failure
	}
	confirm(env, out, "Task deleted.")
	return exitcode.Success
}
