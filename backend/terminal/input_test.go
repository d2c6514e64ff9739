package terminal

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/TheBadkraft/sigui"
)

func TestInputAdapterKeyTap(t *testing.T) {
	a := NewInputAdapter()

	if !a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone)) {
		t.Fatal("rune key should be handled")
	}

	snap := a.Update()
	if !snap.KeyDown(sigui.KeyA) {
		t.Error("Expected 'a' folded to KeyA and held this frame")
	}

	snap = a.Update()
	if snap.KeyDown(sigui.KeyA) {
		t.Error("Expected KeyA released on the next frame")
	}
}

func TestInputAdapterSpecialKeys(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		want sigui.Key
	}{
		{tcell.KeyEscape, sigui.KeyEscape},
		{tcell.KeyEnter, sigui.KeyEnter},
		{tcell.KeyTab, sigui.KeyTab},
		{tcell.KeyBackspace2, sigui.KeyBackspace},
		{tcell.KeyUp, sigui.KeyUp},
		{tcell.KeyPgDn, sigui.KeyPageDown},
		{tcell.KeyF1, sigui.KeyF1},
		{tcell.KeyF12, sigui.KeyF12},
	}

	for _, tt := range tests {
		a := NewInputAdapter()
		a.HandleEvent(tcell.NewEventKey(tt.key, 0, tcell.ModNone))
		snap := a.Update()
		if !snap.KeyDown(tt.want) {
			t.Errorf("tcell key %v: expected %s held", tt.key, sigui.KeyName(tt.want))
		}
	}
}

func TestInputAdapterMouse(t *testing.T) {
	a := NewInputAdapter()

	a.HandleEvent(tcell.NewEventMouse(4, 7, tcell.Button1|tcell.Button2, tcell.ModNone))
	snap := a.Update()
	if snap.MouseX != 4 || snap.MouseY != 7 {
		t.Errorf("Expected cursor (4,7), got (%d,%d)", snap.MouseX, snap.MouseY)
	}
	if snap.Buttons != sigui.MouseButtonLeft|sigui.MouseButtonRight {
		t.Errorf("Expected Left|Right, got %s", snap.Buttons)
	}

	// Buttons stay held until tcell reports otherwise
	snap = a.Update()
	if !snap.MouseDown(sigui.MouseButtonLeft) {
		t.Error("Left button should still be held")
	}

	a.HandleEvent(tcell.NewEventMouse(4, 7, tcell.ButtonNone, tcell.ModNone))
	snap = a.Update()
	if snap.Buttons != sigui.MouseButtonNone {
		t.Errorf("Expected no buttons, got %s", snap.Buttons)
	}
}

func TestInputAdapterDrivesContext(t *testing.T) {
	a := NewInputAdapter()
	ctx := sigui.NewContext(nil)

	var presses, releases int
	_, err := ctx.AddModule("Main",
		func(*sigui.Context, *sigui.Module, sigui.InputSnapshot) {},
		func(_ *sigui.Context, _ *sigui.Module, ev *sigui.EventEnvelope) {
			switch ev.Event.Kind() {
			case sigui.EventKeyPress:
				presses++
			case sigui.EventKeyRelease:
				releases++
			}
		}, nil)
	if err != nil {
		t.Fatalf("AddModule failed: %v", err)
	}

	a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone))
	ctx.Render(a.Update())
	ctx.Render(a.Update())

	if presses != 1 || releases != 1 {
		t.Errorf("Expected 1 press and 1 release, got %d and %d", presses, releases)
	}
}

func TestInputAdapterIgnoresUnknownEvents(t *testing.T) {
	a := NewInputAdapter()
	if a.HandleEvent(tcell.NewEventResize(80, 24)) {
		t.Error("resize events should not be handled")
	}
	if a.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone)) {
		t.Error("non-ASCII runes should not be handled")
	}
}
