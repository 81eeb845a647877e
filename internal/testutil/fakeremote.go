// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"strings"
	"sync"

	"todo/internal/remote"
)

// DefaultListID is the ID used for the default list.
const DefaultListID = "@default"

// FakeRemote is an in-memory implementation of remote.Service for testing.
type FakeRemote struct {
	mu    sync.RWMutex
	lists []remote.TaskList
	tasks map[string][]remote.Task // listID -> tasks

	// Error injection for testing
	DefaultListErr   error
	ResolveListErr   error
	ListOpenTasksErr error
	CreateTaskErr    error
}

// NewFakeRemote creates a FakeRemote with an empty default list.
func NewFakeRemote() *FakeRemote {
	f := &FakeRemote{tasks: make(map[string][]remote.Task)}
	f.lists = []remote.TaskList{
		{ID: DefaultListID, Title: "My Tasks", IsDefault: true},
	}
	return f
}

// AddList adds a named list.
func (f *FakeRemote) AddList(id, title string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lists = append(f.lists, remote.TaskList{ID: id, Title: title})
}

// AddTask appends a task to a list.
func (f *FakeRemote) AddTask(listID, title, status string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks[listID] = append(f.tasks[listID], remote.Task{
		ID:     strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		Title:  title,
		Status: status,
	})
}

// Tasks returns a copy of every task in a list, open or completed.
func (f *FakeRemote) Tasks(listID string) []remote.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	result := make([]remote.Task, len(f.tasks[listID]))
	copy(result, f.tasks[listID])
	return result
}

// DefaultList implements remote.Service.
func (f *FakeRemote) DefaultList(ctx context.Context) (remote.TaskList, error) {
	if f.DefaultListErr != nil {
		return remote.TaskList{}, f.DefaultListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, l := range f.lists {
		if l.IsDefault {
			return l, nil
		}
	}
	return remote.TaskList{}, remote.ErrNotFound
}

// ResolveList implements remote.Service.
func (f *FakeRemote) ResolveList(ctx context.Context, name string) (remote.TaskList, error) {
	if f.ResolveListErr != nil {
		return remote.TaskList{}, f.ResolveListErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	want := strings.ToLower(strings.TrimSpace(name))
	var matches []remote.TaskList
	for _, l := range f.lists {
		if strings.ToLower(strings.TrimSpace(l.Title)) == want {
			matches = append(matches, l)
		}
	}

	switch len(matches) {
	case 0:
		return remote.TaskList{}, remote.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return remote.TaskList{}, remote.ErrAmbiguous
	}
}

// ListOpenTasks implements remote.Service.
func (f *FakeRemote) ListOpenTasks(ctx context.Context, listID string) ([]remote.Task, error) {
	if f.ListOpenTasksErr != nil {
		return nil, f.ListOpenTasksErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()

	var open []remote.Task
	for _, t := range f.tasks[listID] {
		if t.Status == remote.StatusOpen {
			open = append(open, t)
		}
	}
	return open, nil
}

// CreateTask implements remote.Service.
func (f *FakeRemote) CreateTask(ctx context.Context, listID, title string, done bool) error {
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	status := remote.StatusOpen
	if done {
		status = remote.StatusCompleted
	}
	f.AddTask(listID, title, status)
	return nil
}
