package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

// PushCmd copies every local task into a Google Tasks list.
type PushCmd struct {
	listName string
}

func (c *PushCmd) Name() string      { return "push" }
func (c *PushCmd) Aliases() []string { return nil }
func (c *PushCmd) Synopsis() string  { return "Copy local tasks to Google Tasks" }
func (c *PushCmd) Usage() string     { return "todo push [--list <list-name>]" }
func (c *PushCmd) NeedsList() bool   { return true }
func (c *PushCmd) NeedsRemote() bool { return true }

func (c *PushCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.listName, "list", "", "")
	fs.StringVar(&c.listName, "l", "", "")
}

func (c *PushCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if !noArgs(args, errOut) {
		return exitcode.UsageError
	}

	list, code, ok := resolveRemoteList(ctx, env, c.listName, errOut)
	if !ok {
		return code
	}

	tasks := env.List.All()
	for i, task := range tasks {
		if err := env.Remote.CreateTask(ctx, list.ID, task.Description, task.Done); err != nil {
			env.Log.Warn("push interrupted", "pushed", i, "total", len(tasks))
			return reportRemoteError(errOut, err)
		}
	}

	confirm(env, out, fmt.Sprintf("Pushed %d tasks to %s", len(tasks), list.Title))
	return exitcode.Success
}
