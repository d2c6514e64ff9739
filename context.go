package sigui

import (
	"fmt"
	"log/slog"
)

// Context is one running UI: it owns the module registry, the dispatcher
// queues and the last-seen input, and runs one frame per Render call.
//
// A Context is not safe for concurrent use. Create it, add modules, and call
// Render from a single goroutine (normally the one driving the window).
type Context struct {
	modules    []*Module // insertion order, append-only
	dispatcher *Dispatcher

	// User state, never touched by the context
	state any

	// Input seen by the previous frame
	lastInput InputSnapshot

	frameCount uint64
	capacity   int
	closed     bool

	logger *slog.Logger
}

// NewContext creates a context carrying the caller's state.
func NewContext(state any, opts ...ContextOption) *Context {
	ctx := &Context{
		state:    state,
		capacity: defaultCapacity,
		logger:   siguiLogger,
	}

	for _, opt := range opts {
		opt(ctx)
	}

	ctx.modules = make([]*Module, 0, ctx.capacity)
	ctx.dispatcher = newDispatcher(ctx, ctx.capacity)

	return ctx
}

// AddModule registers a module and returns it. name and render are required;
// handler and win may be nil. The window is copied and owned by the module.
// New modules are enabled and are notified and rendered after every module
// added before them.
func (ctx *Context) AddModule(name string, render RenderFunc, handler HandlerFunc, win *Window) (*Module, error) {
	if ctx == nil || ctx.closed {
		return nil, fmt.Errorf("add module %q: context is closed: %w", name, ErrInvalidArgument)
	}
	if name == "" {
		return nil, fmt.Errorf("add module: empty name: %w", ErrInvalidArgument)
	}
	if render == nil {
		return nil, fmt.Errorf("add module %q: nil render callback: %w", name, ErrInvalidArgument)
	}

	for _, existing := range ctx.modules {
		if existing.name == name {
			ctx.logger.Warn("duplicate module name", "module", name)
			break
		}
	}

	m := &Module{
		name:    name,
		render:  render,
		handler: handler,
		enabled: true,
	}
	if win != nil {
		owned := *win
		m.window = &owned
	}

	ctx.modules = append(ctx.modules, m)
	ctx.logger.Debug("added module", "module", name, "count", len(ctx.modules))

	return m, nil
}

// Render runs one frame: it turns the input transitions since the previous
// frame into events, broadcasts them, executes the resulting commands, then
// renders every enabled module. It does nothing on a closed context or one
// without modules; in that case the input is not recorded either.
func (ctx *Context) Render(in InputSnapshot) {
	if ctx == nil || ctx.closed || len(ctx.modules) == 0 {
		return
	}

	ctx.frameCount++
	ctx.logger.Debug("frame begin", "frame", ctx.frameCount, "input", in)

	ctx.generateEvents(&in)
	ctx.dispatcher.DispatchEvents()
	ctx.dispatcher.DispatchCommands()

	for _, m := range ctx.modules {
		if ctx.closed {
			return
		}
		if m.enabled && m.render != nil {
			m.render(ctx, m, in)
		}
	}

	ctx.lastInput = in
	ctx.logger.Debug("frame end", "frame", ctx.frameCount)
}

// generateEvents queues one event per transition: button presses, button
// releases, key presses, key releases, each in ascending bit/code order.
func (ctx *Context) generateEvents(in *InputSnapshot) {
	delta := ComputeDelta(in, &ctx.lastInput)
	if delta.Empty() {
		return
	}

	for _, b := range delta.PressedButtons() {
		ctx.queueSynthesized(EventMousePress, in, uint32(b))
	}
	for _, b := range delta.ReleasedButtons() {
		ctx.queueSynthesized(EventMouseRelease, in, uint32(b))
	}
	for _, k := range delta.PressedKeys() {
		ctx.queueSynthesized(EventKeyPress, in, uint32(k))
	}
	for _, k := range delta.ReleasedKeys() {
		ctx.queueSynthesized(EventKeyRelease, in, uint32(k))
	}
}

func (ctx *Context) queueSynthesized(kind EventKind, in *InputSnapshot, code uint32) {
	ev, err := NewEvent(kind, in, code)
	if err != nil {
		ctx.logger.Warn("dropped event", "kind", kind, "error", err)
		return
	}
	ev.Frame = ctx.frameCount
	ctx.dispatcher.QueueEvent(ev)
}

// Close releases everything the context owns: queued commands and events,
// then modules and their windows. The user state is left alone. Close is
// safe to call more than once, including from a handler, command or render
// callback during Render; the rest of that frame is skipped and afterwards
// Render does nothing.
func (ctx *Context) Close() {
	if ctx == nil || ctx.closed {
		return
	}

	events, commands := ctx.dispatcher.discard()
	if events > 0 || commands > 0 {
		ctx.logger.Debug("discarded pending work", "events", events, "commands", commands)
	}

	for _, m := range ctx.modules {
		m.window = nil
		m.enabled = false
	}
	ctx.modules = nil
	ctx.closed = true
}

// Dispatcher returns the context's event and command queues.
func (ctx *Context) Dispatcher() *Dispatcher {
	return ctx.dispatcher
}

// Modules returns the registered modules in registry order.
// The slice is a copy; the modules are not.
func (ctx *Context) Modules() []*Module {
	out := make([]*Module, len(ctx.modules))
	copy(out, ctx.modules)
	return out
}

// State returns the user state passed to NewContext.
func (ctx *Context) State() any {
	return ctx.state
}

// LastInput returns the snapshot of the most recently rendered frame.
func (ctx *Context) LastInput() InputSnapshot {
	return ctx.lastInput
}

// FrameCount returns the number of frames rendered so far.
func (ctx *Context) FrameCount() uint64 {
	return ctx.frameCount
}

// Closed reports whether Close has been called.
func (ctx *Context) Closed() bool {
	return ctx.closed
}
