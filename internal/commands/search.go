package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/output"
)

// SearchCmd implements the search command.
type SearchCmd struct{}

func (c *SearchCmd) Name() string      { return "search" }
func (c *SearchCmd) Aliases() []string { return nil }
func (c *SearchCmd) Synopsis() string  { return "Find tasks by keyword (case-insensitive)" }
func (c *SearchCmd) Usage() string     { return "todo search <keyword...>" }
func (c *SearchCmd) NeedsList() bool   { return true }
func (c *SearchCmd) NeedsRemote() bool { return false }

func (c *SearchCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SearchCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: keyword required")
		return exitcode.UsageError
	}

	keyword := joinArgs(args)
	output.FormatTasks(out, env.List.Search(keyword), output.NoMatch(keyword), env.Config.Quiet)
	return exitcode.Success
}
