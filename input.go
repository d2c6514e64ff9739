package sigui

import "fmt"

// MouseButton is one bit of the snapshot's button mask.
// Several buttons may be held at once, so masks are combined with |.
type MouseButton uint32

// MouseButtonNone is the empty mask.
const MouseButtonNone MouseButton = 0

const (
	MouseButtonLeft MouseButton = 1 << iota
	MouseButtonRight
	MouseButtonMiddle
	MouseButton4
	MouseButton5
	MouseButton6
)

// mouseButtonBits is the width of the button mask.
const mouseButtonBits = 32

// Key is a key code indexing the snapshot's key table.
// Printable keys use their ASCII code; the rest use the fixed codes below.
type Key uint8

// KeyCount is the size of the key table.
const KeyCount = 256

const (
	KeyNone      Key = 0
	KeyBackspace Key = 8
	KeyTab       Key = 9
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeySpace     Key = ' '
	KeyDelete    Key = 127

	KeyA Key = 'A'
	KeyC Key = 'C'
	KeyS Key = 'S'
	KeyV Key = 'V'
	KeyX Key = 'X'
	KeyZ Key = 'Z'
)

// Navigation keys.
const (
	KeyLeft Key = 0x80 + iota
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyInsert
)

// Function keys.
const (
	KeyF1 Key = 0x90 + iota
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
)

// Modifier keys are tracked like any other key.
const (
	KeyLeftShift Key = 0xA0 + iota
	KeyRightShift
	KeyLeftControl
	KeyRightControl
	KeyLeftAlt
	KeyRightAlt
	KeyLeftSuper
	KeyRightSuper
)

// InputSnapshot is one frame's complete input state.
// It is a plain value: copy it freely, nothing is shared.
// The zero value is "nothing held, cursor at origin".
type InputSnapshot struct {
	// Mouse position
	MouseX, MouseY int

	// Mouse buttons held this frame
	Buttons MouseButton

	// Keyboard - true while held
	Keys [KeyCount]bool
}

// SetMousePos sets the mouse position.
func (s *InputSnapshot) SetMousePos(x, y int) {
	s.MouseX = x
	s.MouseY = y
}

// SetMouseButton sets or clears the given button bits.
func (s *InputSnapshot) SetMouseButton(button MouseButton, down bool) {
	if down {
		s.Buttons |= button
	} else {
		s.Buttons &^= button
	}
}

// SetKey sets key state.
func (s *InputSnapshot) SetKey(key Key, down bool) {
	s.Keys[key] = down
}

// MouseDown returns true if every bit of button is held.
func (s *InputSnapshot) MouseDown(button MouseButton) bool {
	return button != MouseButtonNone && s.Buttons&button == button
}

// KeyDown returns true if a key is currently held.
func (s *InputSnapshot) KeyDown(key Key) bool {
	return s.Keys[key]
}

// Reset clears the snapshot back to its zero value.
func (s *InputSnapshot) Reset() {
	*s = InputSnapshot{}
}

// String returns a one-line summary used in debug logs.
func (s InputSnapshot) String() string {
	held := 0
	for _, down := range s.Keys {
		if down {
			held++
		}
	}
	return fmt.Sprintf("mouse=(%d,%d) buttons=%#x keys=%d", s.MouseX, s.MouseY, uint32(s.Buttons), held)
}

// String returns the button's name, or a hex mask for combined or unnamed bits.
func (b MouseButton) String() string {
	switch b {
	case MouseButtonNone:
		return "None"
	case MouseButtonLeft:
		return "Left"
	case MouseButtonRight:
		return "Right"
	case MouseButtonMiddle:
		return "Middle"
	case MouseButton4:
		return "Button4"
	case MouseButton5:
		return "Button5"
	case MouseButton6:
		return "Button6"
	default:
		return fmt.Sprintf("Buttons(%#x)", uint32(b))
	}
}

var keyNames = map[Key]string{
	KeyNone:         "--",
	KeyBackspace:    "Backspace",
	KeyTab:          "Tab",
	KeyEnter:        "Enter",
	KeyEscape:       "Esc",
	KeySpace:        "Space",
	KeyDelete:       "Del",
	KeyLeft:         "Left",
	KeyRight:        "Right",
	KeyUp:           "Up",
	KeyDown:         "Down",
	KeyPageUp:       "PgUp",
	KeyPageDown:     "PgDn",
	KeyHome:         "Home",
	KeyEnd:          "End",
	KeyInsert:       "Ins",
	KeyF1:           "F1",
	KeyF2:           "F2",
	KeyF3:           "F3",
	KeyF4:           "F4",
	KeyF5:           "F5",
	KeyF6:           "F6",
	KeyF7:           "F7",
	KeyF8:           "F8",
	KeyF9:           "F9",
	KeyF10:          "F10",
	KeyF11:          "F11",
	KeyF12:          "F12",
	KeyLeftShift:    "LShift",
	KeyRightShift:   "RShift",
	KeyLeftControl:  "LCtrl",
	KeyRightControl: "RCtrl",
	KeyLeftAlt:      "LAlt",
	KeyRightAlt:     "RAlt",
	KeyLeftSuper:    "LSuper",
	KeyRightSuper:   "RSuper",
}

// KeyName returns a human-readable name for a key.
func KeyName(k Key) string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	if k > ' ' && k < 127 {
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", uint8(k))
}
