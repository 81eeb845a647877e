package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/store"
)

// LoadCmd implements the load command: it reads another file and prints it.
// The default task file is left untouched.
type LoadCmd struct{}

func (c *LoadCmd) Name() string      { return "load" }
func (c *LoadCmd) Aliases() []string { return nil }
func (c *LoadCmd) Synopsis() string  { return "Print the tasks stored in a file" }
func (c *LoadCmd) Usage() string     { return "todo load <file>" }
func (c *LoadCmd) NeedsList() bool   { return true }
func (c *LoadCmd) NeedsRemote() bool { return false }

func (c *LoadCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LoadCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	path, code, ok := pathArg(args, errOut)
	if !ok {
		return code
	}

	list, err := store.Load(path)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.Failure
	}
	env.Log.Debug("loaded task file", "path", path, "count", list.Len())
	env.List = list

	output.FormatTasks(out, list.All(), output.NoTasks, env.Config.Quiet)
	return exitcode.Success
}
