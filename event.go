package sigui

import "fmt"

// EventKind tags the variant carried by an Event.
type EventKind int

const (
	EventMousePress EventKind = iota
	EventMouseRelease
	EventMouseMove   // reserved, not constructible
	EventMouseScroll // reserved, not constructible
	EventKeyPress
	EventKeyRelease
)

// String returns the kind's name.
func (k EventKind) String() string {
	switch k {
	case EventMousePress:
		return "MousePress"
	case EventMouseRelease:
		return "MouseRelease"
	case EventMouseMove:
		return "MouseMove"
	case EventMouseScroll:
		return "MouseScroll"
	case EventKeyPress:
		return "KeyPress"
	case EventKeyRelease:
		return "KeyRelease"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// IsMouse returns true for the mouse button variants.
func (k EventKind) IsMouse() bool {
	return k == EventMousePress || k == EventMouseRelease
}

// IsKey returns true for the keyboard variants.
func (k EventKind) IsKey() bool {
	return k == EventKeyPress || k == EventKeyRelease
}

// Event is an immutable input event. Mouse variants carry the cursor
// position and the one button that transitioned; key variants carry the
// key code. Fields of the other variant are zero.
type Event struct {
	kind   EventKind
	x, y   int
	button MouseButton
	key    Key
}

// Kind returns the event variant.
func (e Event) Kind() EventKind { return e.kind }

// Position returns the cursor position of a mouse event.
func (e Event) Position() (x, y int) { return e.x, e.y }

// Button returns the button of a mouse event.
func (e Event) Button() MouseButton { return e.button }

// Key returns the key code of a key event.
func (e Event) Key() Key { return e.key }

func (e Event) String() string {
	if e.kind.IsKey() {
		return fmt.Sprintf("%s key=%s", e.kind, KeyName(e.key))
	}
	return fmt.Sprintf("%s button=%s at (%d,%d)", e.kind, e.button, e.x, e.y)
}

// EventEnvelope wraps an Event while it waits in the dispatcher's queue.
type EventEnvelope struct {
	Event Event

	// Frame is the context frame that synthesized the event (0 if queued by hand).
	Frame uint64
}

// NewEvent builds one event from the triggering snapshot. code is the single
// button bit (mouse kinds) or key code (key kinds) that transitioned.
func NewEvent(kind EventKind, in *InputSnapshot, code uint32) (*EventEnvelope, error) {
	if in == nil {
		return nil, fmt.Errorf("new event %s: nil snapshot: %w", kind, ErrInvalidArgument)
	}

	e := Event{kind: kind}
	switch kind {
	case EventMousePress, EventMouseRelease:
		if code == 0 || code&(code-1) != 0 {
			return nil, fmt.Errorf("new event %s: button code %#x is not a single button: %w", kind, code, ErrInvalidArgument)
		}
		e.x = in.MouseX
		e.y = in.MouseY
		e.button = MouseButton(code)
	case EventKeyPress, EventKeyRelease:
		if code >= KeyCount {
			return nil, fmt.Errorf("new event %s: key code %d out of range: %w", kind, code, ErrInvalidArgument)
		}
		e.key = Key(code)
	default:
		return nil, fmt.Errorf("new event %s: %w", kind, ErrInvalidEventKind)
	}

	return &EventEnvelope{Event: e}, nil
}
