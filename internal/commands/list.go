package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/exitcode"
	"todo/internal/output"
)

// ListCmd implements the list command.
type ListCmd struct{}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List all tasks" }
func (c *ListCmd) Usage() string     { return "todo list" }
func (c *ListCmd) NeedsList() bool   { return true }
func (c *ListCmd) NeedsRemote() bool { return false }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if !noArgs(args, errOut) {
		return exitcode.UsageError
	}
	output.FormatTasks(out, env.List.All(), output.NoTasks, env.Config.Quiet)
	return exitcode.Success
}
