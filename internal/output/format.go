// Package output renders tasks and status messages for the CLI.
package output

import (
	"fmt"
	"io"

	"todo/internal/todo"
)

// Sentinel lines printed when a query has no results.
const (
	NoTasks        = "No tasks available."
	NoCompleted    = "No completed tasks found."
	NoPending      = "No pending tasks found."
	noMatchPattern = "No tasks found with keyword '%s'."
)

// FormatTask writes one task line: id, description, then the status label.
func FormatTask(w io.Writer, task todo.Task) {
	fmt.Fprintf(w, "#%d: %s [%s]\n", task.ID, task.Description, StatusLabel(task.Done))
}

// StatusLabel returns the bracketed status word for a task.
func StatusLabel(done bool) string {
	if done {
		return "Done"
	}
	return "Not done"
}

// FormatTasks writes every task, or the empty sentinel when there are none.
// The sentinel is omitted in quiet mode.
func FormatTasks(w io.Writer, tasks []todo.Task, empty string, quiet bool) {
	if len(tasks) == 0 {
		if !quiet {
			fmt.Fprintln(w, empty)
		}
		return
	}
	for _, task := range tasks {
		FormatTask(w, task)
	}
}

// NoMatch returns the sentinel for a search without results.
func NoMatch(keyword string) string {
	return fmt.Sprintf(noMatchPattern, keyword)
}

// NoStatus returns the sentinel for an empty status filter.
func NoStatus(done bool) string {
	if done {
		return NoCompleted
	}
	return NoPending
}
