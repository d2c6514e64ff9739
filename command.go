package sigui

import "fmt"

// ExecuteFunc runs a command against its target module.
type ExecuteFunc func(ctx *Context, target *Module)

// Command is a named, deferred unit of work. Handlers create commands while
// events are dispatched; the dispatcher runs each one exactly once in the
// same frame, after every event has been delivered.
type Command struct {
	name    string
	target  *Module // not owned
	execute ExecuteFunc
}

// NewCommand creates a command bound to target. execute may be nil, in which
// case the command is dropped when drained.
func NewCommand(name string, target *Module, execute ExecuteFunc) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("new command: empty name: %w", ErrInvalidArgument)
	}
	return &Command{
		name:    name,
		target:  target,
		execute: execute,
	}, nil
}

// Name returns the command identifier (e.g. "open_menu").
func (c *Command) Name() string { return c.name }

// Target returns the module the command acts on.
func (c *Command) Target() *Module { return c.target }
