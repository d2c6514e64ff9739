package terminal

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/TheBadkraft/sigui"
)

// InputAdapter turns tcell events into one sigui.InputSnapshot per frame.
//
// Terminals report key presses but never key releases, so a key is held
// for the frame in which its event arrived and released on the next one.
// Mouse events carry the full button state and map directly.
type InputAdapter struct {
	input  sigui.InputSnapshot
	tapped []sigui.Key
}

// NewInputAdapter creates an adapter with nothing held.
func NewInputAdapter() *InputAdapter {
	return &InputAdapter{tapped: make([]sigui.Key, 0, 8)}
}

// HandleEvent folds one tcell event into the pending snapshot. It returns
// false for events it does not understand.
func (a *InputAdapter) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		k, ok := tcellKeyToKey(ev)
		if !ok {
			return false
		}
		a.input.SetKey(k, true)
		a.tapped = append(a.tapped, k)
		return true
	case *tcell.EventMouse:
		x, y := ev.Position()
		a.input.SetMousePos(x, y)
		a.input.Buttons = tcellButtonsToMask(ev.Buttons())
		return true
	}
	return false
}

// Update returns this frame's snapshot and releases keys tapped during it.
func (a *InputAdapter) Update() sigui.InputSnapshot {
	snap := a.input
	for _, k := range a.tapped {
		a.input.SetKey(k, false)
	}
	a.tapped = a.tapped[:0]
	return snap
}

// tcellKeyToKey maps a tcell key event to a key code. Letters are folded
// to upper case to match the codes used by window-system backends.
func tcellKeyToKey(ev *tcell.EventKey) (sigui.Key, bool) {
	switch ev.Key() {
	case tcell.KeyRune:
		r := ev.Rune()
		if r < ' ' || r >= unicode.MaxASCII {
			return sigui.KeyNone, false
		}
		return sigui.Key(unicode.ToUpper(r)), true
	case tcell.KeyEscape:
		return sigui.KeyEscape, true
	case tcell.KeyEnter:
		return sigui.KeyEnter, true
	case tcell.KeyTab:
		return sigui.KeyTab, true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return sigui.KeyBackspace, true
	case tcell.KeyDelete:
		return sigui.KeyDelete, true
	case tcell.KeyInsert:
		return sigui.KeyInsert, true
	case tcell.KeyLeft:
		return sigui.KeyLeft, true
	case tcell.KeyRight:
		return sigui.KeyRight, true
	case tcell.KeyUp:
		return sigui.KeyUp, true
	case tcell.KeyDown:
		return sigui.KeyDown, true
	case tcell.KeyPgUp:
		return sigui.KeyPageUp, true
	case tcell.KeyPgDn:
		return sigui.KeyPageDown, true
	case tcell.KeyHome:
		return sigui.KeyHome, true
	case tcell.KeyEnd:
		return sigui.KeyEnd, true
	}

	if k := ev.Key(); k >= tcell.KeyF1 && k <= tcell.KeyF12 {
		return sigui.KeyF1 + sigui.Key(k-tcell.KeyF1), true
	}
	return sigui.KeyNone, false
}

// tcellButtonsToMask maps tcell's button mask to button bits. Wheel bits
// are dropped.
func tcellButtonsToMask(buttons tcell.ButtonMask) sigui.MouseButton {
	var mask sigui.MouseButton
	pairs := [...]struct {
		from tcell.ButtonMask
		to   sigui.MouseButton
	}{
		{tcell.Button1, sigui.MouseButtonLeft},
		{tcell.Button2, sigui.MouseButtonRight},
		{tcell.Button3, sigui.MouseButtonMiddle},
		{tcell.Button4, sigui.MouseButton4},
		{tcell.Button5, sigui.MouseButton5},
		{tcell.Button6, sigui.MouseButton6},
	}
	for _, p := range pairs {
		if buttons&p.from != 0 {
			mask |= p.to
		}
	}
	return mask
}
