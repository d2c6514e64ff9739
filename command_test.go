package sigui

import (
	"errors"
	"testing"
)

func TestNewCommand(t *testing.T) {
	ctx := NewContext(nil, WithLogger(quietLogger()), WithCapacity(16))
	m, _ := ctx.AddModule("target", noopRender, nil, nil)

	cmd, err := NewCommand("open_menu", m, nil)
	if err != nil {
		t.Fatalf("NewCommand failed: %v", err)
	}
	if cmd.Name() != "open_menu" || cmd.Target() != m {
		t.Errorf("got name=%q target=%v", cmd.Name(), cmd.Target())
	}

	if _, err := NewCommand("", m, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty name: err = %v", err)
	}
}

func TestCommandsQueuedDuringDrainWait(t *testing.T) {
	ctx := NewContext(nil, WithLogger(quietLogger()))
	m, _ := ctx.AddModule("m", noopRender, nil, nil)
	d := ctx.Dispatcher()

	runs := 0
	var requeue ExecuteFunc
	requeue = func(c *Context, target *Module) {
		runs++
		next, _ := NewCommand("again", target, requeue)
		c.Dispatcher().QueueCommand(next)
	}
	first, _ := NewCommand("first", m, requeue)
	d.QueueCommand(first)

	d.DispatchCommands()
	if runs != 1 || d.PendingCommands() != 1 {
		t.Errorf("runs=%d pending=%d, want 1 and 1", runs, d.PendingCommands())
	}
}
