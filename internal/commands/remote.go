package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"todo/internal/exitcode"
	"todo/internal/remote"
)

// resolveRemoteList picks the list named by flag, then config, then the
// default list. On failure it reports the error and ok is false.
func resolveRemoteList(ctx context.Context, env *Env, flagName string, errOut io.Writer) (list remote.TaskList, code int, ok bool) {
	name := flagName
	if name == "" {
		name = env.Config.RemoteList
	}

	list, err := remote.Resolve(ctx, env.Remote, name)
	switch {
	case err == nil:
		return list, exitcode.Success, true
	case name != "" && errors.Is(err, remote.ErrNotFound):
		fmt.Fprintf(errOut, "error: list not found: %s\n", name)
		return list, exitcode.UsageError, false
	case errors.Is(err, remote.ErrAmbiguous):
		fmt.Fprintf(errOut, "error: ambiguous list name: %s\n", name)
		return list, exitcode.UsageError, false
	default:
		return list, reportRemoteError(errOut, err), false
	}
}

// reportRemoteError prints err and maps it to an exit code.
func reportRemoteError(errOut io.Writer, err error) int {
	if errors.Is(err, remote.ErrAuth) {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.AuthError
	}
	fmt.Fprintf(errOut, "error: backend error: %v\n", err)
	return exitcode.BackendError
}
