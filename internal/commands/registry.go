package commands

import (
	"fmt"
	"sort"
)

// Registry maps command names and aliases to commands.
type Registry struct {
	cmds map[string]Command
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{cmds: make(map[string]Command)}
}

// NewDefaultRegistry returns a registry holding every built-in command.
// The set is fixed; each call returns fresh command values so flag state
// never leaks between runs.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	for _, c := range []Command{
		&AddCmd{},
		&DeleteCmd{},
		&EditCmd{},
		&DoneCmd{},
		&ListCmd{},
		&SearchCmd{},
		&FilterCmd{},
		&SaveCmd{},
		&LoadCmd{},
		&PushCmd{},
		&PullCmd{},
		&LoginCmd{},
		&LogoutCmd{},
		&HelpCmd{},
		&VersionCmd{},
	} {
		if err := r.Register(c); err != nil {
			panic(err)
		}
	}
	return r
}

// Register adds a command to the registry.
// Returns an error if the name or any alias is already registered.
func (r *Registry) Register(c Command) error {
	names := append([]string{c.Name()}, c.Aliases()...)
	for _, name := range names {
		if _, exists := r.cmds[name]; exists {
			return fmt.Errorf("command already registered: %s", name)
		}
	}
	for _, name := range names {
		r.cmds[name] = c
	}
	return nil
}

// Find looks up a command by name or alias.
func (r *Registry) Find(name string) (Command, bool) {
	cmd, ok := r.cmds[name]
	return cmd, ok
}

// All returns all unique commands sorted by name.
func (r *Registry) All() []Command {
	seen := make(map[string]Command)
	for _, cmd := range r.cmds {
		seen[cmd.Name()] = cmd
	}

	result := make([]Command, 0, len(seen))
	for _, cmd := range seen {
		result = append(result, cmd)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Name() < result[j].Name()
	})
	return result
}
