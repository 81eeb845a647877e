package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/store"
)

// SaveCmd implements the save command: it copies the current list to another file.
type SaveCmd struct{}

func (c *SaveCmd) Name() string      { return "save" }
func (c *SaveCmd) Aliases() []string { return nil }
func (c *SaveCmd) Synopsis() string  { return "Write the task list to a file" }
func (c *SaveCmd) Usage() string     { return "todo save <file>" }
func (c *SaveCmd) NeedsList() bool   { return true }
func (c *SaveCmd) NeedsRemote() bool { return false }

func (c *SaveCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *SaveCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	path, code, ok := pathArg(args, errOut)
	if !ok {
		return code
	}

	if err := store.Save(path, env.List); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.Failure
	}
	env.Log.Debug("saved task file", "path", path, "count", env.List.Len())

	confirm(env, out, savedMessage(path))
	return exitcode.Success
}
