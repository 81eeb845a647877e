// Package todo holds the task list model and its queries.
package todo

import "strings"

// Task is a single to-do entry.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// NewTask creates an open task with the given id.
func NewTask(id int, description string) Task {
	return Task{ID: id, Description: description}
}

// MarkDone marks the task completed. Calling it on a completed task is a no-op.
func (t *Task) MarkDone() {
	t.Done = true
}

// Edit replaces the description. Empty descriptions are accepted.
func (t *Task) Edit(description string) {
	t.Description = description
}

// List is an ordered collection of tasks, kept in insertion order.
type List struct {
	Todos []Task `json:"todos"`
}

// New returns an empty list.
func New() *List {
	return &List{Todos: []Task{}}
}

// Len returns the number of tasks.
func (l *List) Len() int {
	return len(l.Todos)
}

// Add appends a task and returns it.
// The id is the list length after insertion, so ids can repeat once
// tasks have been deleted. Stored files depend on this numbering.
func (l *List) Add(description string) Task {
	task := NewTask(len(l.Todos)+1, description)
	l.Todos = append(l.Todos, task)
	return task
}

// Delete removes every task with the given id and returns how many were removed.
func (l *List) Delete(id int) int {
	kept := l.Todos[:0]
	for _, t := range l.Todos {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	removed := len(l.Todos) - len(kept)
	l.Todos = kept
	return removed
}

// Edit replaces the description of the first task with the given id.
// Reports whether a task matched.
func (l *List) Edit(id int, description string) bool {
	t := l.find(id)
	if t == nil {
		return false
	}
	t.Edit(description)
	return true
}

// MarkDone completes the first task with the given id.
// Reports whether a task matched.
func (l *List) MarkDone(id int) bool {
	t := l.find(id)
	if t == nil {
		return false
	}
	t.MarkDone()
	return true
}

// All returns a copy of every task in order.
func (l *List) All() []Task {
	result := make([]Task, len(l.Todos))
	copy(result, l.Todos)
	return result
}

// Search returns tasks whose description contains keyword, ignoring case.
func (l *List) Search(keyword string) []Task {
	needle := strings.ToLower(keyword)
	var result []Task
	for _, t := range l.Todos {
		if strings.Contains(strings.ToLower(t.Description), needle) {
			result = append(result, t)
		}
	}
	return result
}

// FilterByStatus returns tasks whose completion flag equals done.
func (l *List) FilterByStatus(done bool) []Task {
	var result []Task
	for _, t := range l.Todos {
		if t.Done == done {
			result = append(result, t)
		}
	}
	return result
}

// Counts returns the number of completed and pending tasks.
func (l *List) Counts() (done, pending int) {
	for _, t := range l.Todos {
		if t.Done {
			done++
		} else {
			pending++
		}
	}
	return done, pending
}

func (l *List) find(id int) *Task {
	for i := range l.Todos {
		if l.Todos[i].ID == id {
			return &l.Todos[i]
		}
	}
	return nil
}
