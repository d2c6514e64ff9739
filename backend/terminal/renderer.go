// Package terminal provides a tcell backend for the sigui package. Window
// rectangles are measured in terminal cells.
package terminal

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/TheBadkraft/sigui"
)

// ErrNotInitialized is returned by Draw before a successful Init.
var ErrNotInitialized = errors.New("terminal: renderer not initialized")

// Renderer implements sigui.Renderer on a tcell screen.
type Renderer struct {
	screen tcell.Screen
	ready  bool
	fill   rune
	style  tcell.Style
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithScreen uses an existing screen instead of opening the terminal.
// Tests pass a tcell.SimulationScreen here.
func WithScreen(screen tcell.Screen) Option {
	return func(r *Renderer) { r.screen = screen }
}

// WithFillRune sets the rune module windows are painted with.
func WithFillRune(fill rune) Option {
	return func(r *Renderer) { r.fill = fill }
}

// WithFillColor sets the color module windows are painted with.
func WithFillColor(color uint32) Option {
	return func(r *Renderer) {
		cr, cg, cb, _ := sigui.UnpackRGBA(color)
		c := tcell.NewRGBColor(int32(cr), int32(cg), int32(cb))
		r.style = tcell.StyleDefault.Foreground(c).Background(c)
	}
}

// NewRenderer creates a renderer. The terminal is not touched until Init.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		fill:  ' ',
		style: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorWhite),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// sizer is implemented by screens whose size the program controls,
// such as tcell.SimulationScreen.
type sizer interface {
	SetSize(width, height int)
}

// Init opens the screen. A real terminal keeps its own size; width and
// height are applied only to screens that can be resized.
func (r *Renderer) Init(width, height int) error {
	if r.screen == nil {
		screen, err := tcell.NewScreen()
		if err != nil {
			return r.Dispose(fmt.Errorf("new screen: %w", err))
		}
		r.screen = screen
	}

	if err := r.screen.Init(); err != nil {
		r.screen = nil
		return r.Dispose(fmt.Errorf("init screen: %w", err))
	}
	r.ready = true

	if s, ok := r.screen.(sizer); ok {
		s.SetSize(width, height)
	}
	r.screen.EnableMouse()
	r.screen.HideCursor()
	r.screen.Clear()

	return nil
}

// Screen returns the underlying screen, or nil before Init.
func (r *Renderer) Screen() tcell.Screen {
	if !r.ready {
		return nil
	}
	return r.screen
}

// Draw clears the screen, fills the module's window, clipped to the
// screen, and shows the result.
func (r *Renderer) Draw(m *sigui.Module) error {
	if !r.ready {
		return ErrNotInitialized
	}
	if m == nil || m.Window().Empty() {
		return nil
	}
	win := m.Window()

	r.screen.Clear()

	w, h := r.screen.Size()
	x0, y0 := max(win.X, 0), max(win.Y, 0)
	x1, y1 := min(win.X+win.Width, w), min(win.Y+win.Height, h)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r.screen.SetContent(x, y, r.fill, nil, r.style)
		}
	}

	r.screen.Show()
	return nil
}

// Dispose restores the terminal. It returns cause wrapped, or nil for a
// clean shutdown. Safe to call more than once.
func (r *Renderer) Dispose(cause error) error {
	if r.ready {
		r.screen.Fini()
		r.ready = false
	}

	if cause != nil {
		return fmt.Errorf("terminal renderer: %w", cause)
	}
	return nil
}
