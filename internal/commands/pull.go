package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

// PullCmd appends the open tasks of a Google Tasks list to the local list.
type PullCmd struct {
	listName string
}

func (c *PullCmd) Name() string      { return "pull" }
func (c *PullCmd) Aliases() []string { return nil }
func (c *PullCmd) Synopsis() string  { return "Append open Google Tasks to the local list" }
func (c *PullCmd) Usage() string     { return "todo pull [--list <list-name>]" }
func (c *PullCmd) NeedsList() bool   { return true }
func (c *PullCmd) NeedsRemote() bool { return true }

func (c *PullCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PullCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if !noArgs(args, errOut) {
		return exitcode.UsageError
	}

	list, code, ok := resolveRemoteList(ctx, env, c.listName, errOut)
	if !ok {
		return code
	}

	open, err := env.Remote.ListOpenTasks(ctx, list.ID)
	if err != nil {
		return reportRemoteError(errOut, err)
	}

	for _, task := range open {
		env.List.Add(task.Title)
	}

	if !commit(env, out, errOut) {
		return exitcode.Failure
	}
	confirm(env, out, fmt.Sprintf("Pulled %d tasks from %s", len(open), list.Title))
	return exitcode.Success
}
