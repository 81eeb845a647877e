package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"todo/internal/exitcode"
)

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "todo help" }
func (c *HelpCmd) NeedsList() bool   { return false }
func (c *HelpCmd) NeedsRemote() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, HelpText)
	return exitcode.Success
}

// HelpText is the full usage message.
const HelpText = `Usage:
  todo                                   List all tasks
  todo add [common flags] <description...>
  todo delete [common flags] <id>
  todo edit [common flags] <id> <description...>
  todo done [common flags] <id>
  todo list [common flags]
  todo search [common flags] <keyword...>
  todo filter [common flags] [--done | --not-done]
  todo save [common flags] <file>
  todo load [common flags] <file>
  todo push [common flags] [--list <list-name>]
  todo pull [common flags] [--list <list-name>]
  todo login [common flags]
  todo logout [common flags]
  todo help
  todo version

Common flags:
  --config <dir>   Override config directory
  --file <path>    Task file (default todos.json)
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
`
