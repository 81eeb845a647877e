package commands

import (
	"context"
	"flag"
	"io"

	"todo/internal/exitcode"
	"todo/internal/output"
)

// FilterCmd implements the filter command.
type FilterCmd struct {
	done    bool
	notDone bool
}

func (c *FilterCmd) Name() string      { return "filter" }
func (c *FilterCmd) Aliases() []string { return nil }
func (c *FilterCmd) Synopsis() string  { return "List completed or pending tasks" }
func (c *FilterCmd) Usage() string     { return "todo filter [--done | --not-done]" }
func (c *FilterCmd) NeedsList() bool   { return true }
func (c *FilterCmd) NeedsRemote() bool { return false }

func (c *FilterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.done, "done", false, "")
	fs.BoolVar(&c.done, "d", false, "")
	fs.BoolVar(&c.notDone, "not-done", false, "")
	fs.BoolVar(&c.notDone, "n", false, "")
}

func (c *FilterCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if !noArgs(args, errOut) {
		return exitcode.UsageError
	}

	// --done wins over --not-done; with neither there is nothing to show.
	if !c.done && !c.notDone {
		env.Log.Debug("filter without status flag")
		return exitcode.Success
	}

	output.FormatTasks(out, env.List.FilterByStatus(c.done), output.NoStatus(c.done), env.Config.Quiet)
	return exitcode.Success
}
