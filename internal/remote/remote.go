// Package remote defines the backend-agnostic interface used to mirror the
// local task list to a hosted task service.
package remote

import (
	"context"
	"errors"
)

// Task status values as reported by the backend.
const (
	StatusOpen      = "needsAction"
	StatusCompleted = "completed"
)

var (
	// ErrNotFound is returned when a list cannot be resolved.
	ErrNotFound = errors.New("not found")

	// ErrAmbiguous is returned when a list name matches more than one list.
	ErrAmbiguous = errors.New("ambiguous")

	// ErrAuth is returned when credentials are missing, expired, or revoked.
	ErrAuth = errors.New("auth error")
)

// Task is a task held by the backend.
type Task struct {
	ID     string
	Title  string
	Status string
}

// TaskList is a list held by the backend.
type TaskList struct {
	ID        string
	Title     string
	IsDefault bool
}

// Service is implemented by hosted task backends.
type Service interface {
	// DefaultList returns the account's default list.
	DefaultList(ctx context.Context) (TaskList, error)

	// ResolveList finds a list by name (case-insensitive, trimmed).
	// Returns ErrNotFound or ErrAmbiguous when no single list matches.
	ResolveList(ctx context.Context, name string) (TaskList, error)

	// ListOpenTasks returns every open task of a list in backend order.
	ListOpenTasks(ctx context.Context, listID string) ([]Task, error)

	// CreateTask creates a task, already completed when done is set.
	CreateTask(ctx context.Context, listID, title string, done bool) error
}

// Resolve returns the named list, or the default list when name is empty.
func Resolve(ctx context.Context, svc Service, name string) (TaskList, error) {
	if name == "" {
		return svc.DefaultList(ctx)
	}
	return svc.ResolveList(ctx, name)
}
