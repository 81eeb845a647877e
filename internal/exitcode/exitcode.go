// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// Failure indicates a task file read, parse, or write failure.
	Failure = 1

	// UsageError indicates bad arguments, an unknown command, or an unknown flag.
	UsageError = 2

	// AuthError indicates missing or rejected Google credentials.
	AuthError = 3

	// BackendError indicates a Google Tasks API or network error.
	BackendError = 4
)
