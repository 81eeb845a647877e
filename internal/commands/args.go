package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo/internal/exitcode"
)

// parseID parses a task id argument. Ids are non-negative integers.
func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id < 0 {
		return 0, fmt.Errorf("invalid id: %s", s)
	}
	return id, nil
}

// idArg reads a lone id argument, reporting usage errors to errOut.
// ok is false when the caller should return code.
func idArg(args []string, errOut io.Writer) (id int, code int, ok bool) {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: id required")
		return 0, exitcode.UsageError, false
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return 0, exitcode.UsageError, false
	}
	id, err := parseID(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return 0, exitcode.UsageError, false
	}
	return id, exitcode.Success, true
}

// pathArg reads a lone file path argument.
func pathArg(args []string, errOut io.Writer) (path string, code int, ok bool) {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: file path required")
		return "", exitcode.UsageError, false
	}
	if len(args) > 1 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[1])
		return "", exitcode.UsageError, false
	}
	return args[0], exitcode.Success, true
}

// noArgs rejects any positional argument.
func noArgs(args []string, errOut io.Writer) bool {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return false
	}
	return true
}

// joinArgs joins words into a single text argument.
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}

// commit saves the list to the task file and announces it on out.
// Returns false after reporting the error.
func commit(env *Env, out, errOut io.Writer) bool {
	if err := env.Commit(); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return false
	}
	confirm(env, out, savedMessage(env.Config.File))
	return true
}

func savedMessage(path string) string {
	return "Todos saved to " + path
}

// confirm prints an informational line unless quiet.
func confirm(env *Env, out io.Writer, msg string) {
	if !env.Config.Quiet {
		fmt.Fprintln(out, msg)
	}
}
