package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/TheBadkraft/sigui"
)

// GLFWInputAdapter turns GLFW callbacks into one sigui.InputSnapshot per frame.
type GLFWInputAdapter struct {
	window *glfw.Window
	input  sigui.InputSnapshot
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{window: window}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Update returns this frame's snapshot. Call it after glfw.PollEvents.
func (a *GLFWInputAdapter) Update() sigui.InputSnapshot {
	x, y := a.window.GetCursorPos()
	a.input.SetMousePos(int(x), int(y))
	return a.input
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	k, ok := glfwKeyToKey(key)
	if !ok {
		return
	}

	switch action {
	case glfw.Press, glfw.Repeat:
		a.input.SetKey(k, true)
	case glfw.Release:
		a.input.SetKey(k, false)
	}
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButtonToMask(button)
	if b == sigui.MouseButtonNone {
		return
	}

	switch action {
	case glfw.Press:
		a.input.SetMouseButton(b, true)
	case glfw.Release:
		a.input.SetMouseButton(b, false)
	}
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.input.SetMousePos(int(xpos), int(ypos))
}

// glfwKeyToKey maps GLFW keys to key codes. Printable GLFW keys already use
// their ASCII code.
func glfwKeyToKey(key glfw.Key) (sigui.Key, bool) {
	if key >= glfw.KeySpace && key <= glfw.KeyGraveAccent {
		return sigui.Key(key), true
	}

	switch key {
	case glfw.KeyEscape:
		return sigui.KeyEscape, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return sigui.KeyEnter, true
	case glfw.KeyTab:
		return sigui.KeyTab, true
	case glfw.KeyBackspace:
		return sigui.KeyBackspace, true
	case glfw.KeyDelete:
		return sigui.KeyDelete, true
	case glfw.KeyInsert:
		return sigui.KeyInsert, true
	case glfw.KeyLeft:
		return sigui.KeyLeft, true
	case glfw.KeyRight:
		return sigui.KeyRight, true
	case glfw.KeyUp:
		return sigui.KeyUp, true
	case glfw.KeyDown:
		return sigui.KeyDown, true
	case glfw.KeyPageUp:
		return sigui.KeyPageUp, true
	case glfw.KeyPageDown:
		return sigui.KeyPageDown, true
	case glfw.KeyHome:
		return sigui.KeyHome, true
	case glfw.KeyEnd:
		return sigui.KeyEnd, true
	case glfw.KeyLeftShift:
		return sigui.KeyLeftShift, true
	case glfw.KeyRightShift:
		return sigui.KeyRightShift, true
	case glfw.KeyLeftControl:
		return sigui.KeyLeftControl, true
	case glfw.KeyRightControl:
		return sigui.KeyRightControl, true
	case glfw.KeyLeftAlt:
		return sigui.KeyLeftAlt, true
	case glfw.KeyRightAlt:
		return sigui.KeyRightAlt, true
	case glfw.KeyLeftSuper:
		return sigui.KeyLeftSuper, true
	case glfw.KeyRightSuper:
		return sigui.KeyRightSuper, true
	}

	if key >= glfw.KeyF1 && key <= glfw.KeyF12 {
		return sigui.KeyF1 + sigui.Key(key-glfw.KeyF1), true
	}
	return sigui.KeyNone, false
}

// glfwMouseButtonToMask maps GLFW mouse buttons to button bits.
func glfwMouseButtonToMask(button glfw.MouseButton) sigui.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return sigui.MouseButtonLeft
	case glfw.MouseButtonRight:
		return sigui.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return sigui.MouseButtonMiddle
	case glfw.MouseButton4:
		return sigui.MouseButton4
	case glfw.MouseButton5:
		return sigui.MouseButton5
	case glfw.MouseButton6:
		return sigui.MouseButton6
	default:
		return sigui.MouseButtonNone
	}
}
