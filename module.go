package sigui

// RenderFunc draws a module for the current frame. It must not change the
// context's module registry.
type RenderFunc func(ctx *Context, m *Module, in InputSnapshot)

// HandlerFunc receives every event of a frame. It may queue commands through
// ctx.Dispatcher() and must not block.
type HandlerFunc func(ctx *Context, m *Module, ev *EventEnvelope)

// Module is a named, independently enabled unit of the UI. Modules are
// created by Context.AddModule and live as long as their context.
type Module struct {
	name    string
	render  RenderFunc
	handler HandlerFunc // nil means "ignore events"
	enabled bool
	window  *Window // owned copy, may be nil
}

// Name returns the module name.
func (m *Module) Name() string { return m.name }

// Enabled reports whether the module receives events and is rendered.
func (m *Module) Enabled() bool { return m.enabled }

// SetEnabled gates both event delivery and rendering.
func (m *Module) SetEnabled(enabled bool) { m.enabled = enabled }

// Window returns the module's window, or nil if it has none.
// The returned window belongs to the module; callers may move or resize it.
func (m *Module) Window() *Window { return m.window }

// HasHandler reports whether the module handles events.
func (m *Module) HasHandler() bool { return m.handler != nil }

func (m *Module) String() string {
	if m == nil {
		return "<nil>"
	}
	return m.name
}
