// Package store reads and writes task lists as JSON documents on disk.
package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"todo/internal/todo"
)

// ErrCorrupt marks a task file that exists but cannot be parsed or fails validation.
var ErrCorrupt = errors.New("corrupt task file")

// Load reads the task list at path.
// A missing file yields an empty list; any other failure is returned.
func Load(path string) (*todo.List, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return todo.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	list, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return list, nil
}

// Save writes the list to path as indented JSON, replacing any existing content.
func Save(path string, list *todo.List) error {
	var buf bytes.Buffer
	if err := Encode(&buf, list); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// Decode parses a task document from r. Both compact and indented input are accepted.
func Decode(r io.Reader) (*todo.List, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	if err := validate(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var list todo.List
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return &list, nil
}

// Encode writes list to w as indented JSON with a trailing newline.
func Encode(w io.Writer, list *todo.List) error {
	doc := list
	if doc.Todos == nil {
		doc = &todo.List{Todos: []todo.Task{}}
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
