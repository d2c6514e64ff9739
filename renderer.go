package sigui

// Renderer is the rendering collaborator: it owns the native surface and
// paints module windows onto it.
type Renderer interface {
	// Init creates the drawing surface.
	Init(width, height int) error

	// Draw paints the module's window and presents the frame.
	// Modules without a window are skipped.
	Draw(m *Module) error

	// Dispose tears the surface down. A non-nil cause is an earlier failure
	// being reported; Dispose returns it, annotated, so init paths can
	// `return r.Dispose(err)`.
	Dispose(cause error) error
}

// DrawWindow returns a render callback that paints the module's window with r.
// Draw failures are logged and do not stop the frame.
func DrawWindow(r Renderer) RenderFunc {
	return func(ctx *Context, m *Module, _ InputSnapshot) {
		if err := r.Draw(m); err != nil {
			ctx.logger.Error("draw module", "module", m.name, "error", err)
		}
	}
}
