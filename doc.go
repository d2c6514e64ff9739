/*
Package sigui provides a minimal immediate-mode UI scaffold: a per-frame
Context holding named modules, an event/command dispatcher, and an input
delta engine that turns raw input snapshots into press/release events.

# Overview

The caller owns the frame loop. Each tick it builds an InputSnapshot (cursor
position, a button bitmask, and a 256-entry key table) and hands it to
Context.Render. One Render call runs one frame, always to completion:

 1. The snapshot is diffed against the previous frame's snapshot.
 2. Each transition becomes one event (button presses, button releases,
    key presses, key releases) and is queued.
 3. Every queued event is broadcast to every enabled module's handler,
    in the order modules were added.
 4. Handlers may queue commands; every queued command then runs once
    against its target module.
 5. Every enabled module's render callback is called with the snapshot.
 6. The snapshot is stored for the next frame's diff.

On the first frame the previous snapshot is all zero, so anything already
held shows up as a press.

# Quick Start

	renderer := opengl.NewRenderer()
	if err := renderer.Init(800, 600); err != nil {
	    return err
	}
	defer renderer.Dispose(nil)

	ctx := sigui.NewContext(&state)
	defer ctx.Close()

	ctx.AddModule("MainWindow", sigui.DrawWindow(renderer),
	    func(ctx *sigui.Context, m *sigui.Module, ev *sigui.EventEnvelope) {
	        if ev.Event.Kind() != sigui.EventMousePress {
	            return
	        }
	        cmd, _ := sigui.NewCommand("toggle", m, toggle)
	        ctx.Dispatcher().QueueCommand(cmd)
	    },
	    sigui.NewWindow(50, 50, 300, 400))

	input := opengl.NewGLFWInputAdapter(renderer.Window())
	for !renderer.ShouldClose() {
	    glfw.PollEvents()
	    ctx.Render(input.Update())
	}

# Queues

Events and commands live in two independent FIFO queues owned by the
context's Dispatcher. A drain consumes the entries present when it starts;
anything queued by a handler while the drain runs waits for the next drain
of that queue. Commands hold a plain pointer to their target module. Modules
are never removed from a live context, so the pointer stays valid.

# Errors

Constructors (AddModule, NewEvent, NewCommand) return a nil value and an
error wrapping ErrInvalidArgument or ErrInvalidEventKind. Nothing in the
frame pipeline is fatal: an event that cannot be built is logged and
dropped.

# Concurrency

A Context is single-threaded. Render, AddModule and Close must be called
from the goroutine that owns it; there is no internal locking.

# Logging

Diagnostics go through log/slog. The package logger writes text to stderr
at Info; SetVerbose(true) enables per-frame, per-event and per-command
Debug records. Use WithLogger to give a context its own logger.
*/
package sigui
