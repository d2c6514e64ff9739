package sigui

// Window is an on-screen rectangle in pixels, top-left origin.
// A module owns its window; the renderer collaborator paints it.
type Window struct {
	X, Y          int // Top-left position
	Width, Height int
}

// NewWindow creates a window rectangle.
func NewWindow(x, y, width, height int) *Window {
	return &Window{X: x, Y: y, Width: width, Height: height}
}

// Contains returns true if the point is inside the window.
func (w *Window) Contains(x, y int) bool {
	if w == nil {
		return false
	}
	return x >= w.X && x < w.X+w.Width && y >= w.Y && y < w.Y+w.Height
}

// Empty returns true if the window has no visible area.
func (w *Window) Empty() bool {
	return w == nil || w.Width <= 0 || w.Height <= 0
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite uint32 = 0xFFFFFFFF
	ColorBlack uint32 = 0xFF000000
	ColorRed   uint32 = 0xFF0000FF
	ColorGreen uint32 = 0xFF00FF00
	ColorBlue  uint32 = 0xFFFF0000
	ColorGray  uint32 = 0xFF808080
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

// UnpackRGBAf extracts RGBA components as floats in [0, 1].
func UnpackRGBAf(c uint32) (r, g, b, a float32) {
	ri, gi, bi, ai := UnpackRGBA(c)
	return float32(ri) / 255, float32(gi) / 255, float32(bi) / 255, float32(ai) / 255
}
