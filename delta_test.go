package sigui

import (
	"reflect"
	"testing"
)

func TestComputeDeltaButtons(t *testing.T) {
	tests := []struct {
		name         string
		prev, cur    MouseButton
		wantPressed  MouseButton
		wantReleased MouseButton
	}{
		{"none", MouseButtonNone, MouseButtonNone, 0, 0},
		{"press left", MouseButtonNone, MouseButtonLeft, MouseButtonLeft, 0},
		{"hold left", MouseButtonLeft, MouseButtonLeft, 0, 0},
		{"release left", MouseButtonLeft, MouseButtonNone, 0, MouseButtonLeft},
		{"add right", MouseButtonLeft, MouseButtonLeft | MouseButtonRight, MouseButtonRight, 0},
		{"swap", MouseButtonLeft, MouseButtonRight, MouseButtonRight, MouseButtonLeft},
		{"chord press", MouseButtonNone, MouseButtonLeft | MouseButtonMiddle, MouseButtonLeft | MouseButtonMiddle, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prev := InputSnapshot{Buttons: tt.prev}
			cur := InputSnapshot{Buttons: tt.cur}
			d := ComputeDelta(&cur, &prev)
			if d.Pressed != tt.wantPressed {
				t.Errorf("Pressed = %s, want %s", d.Pressed, tt.wantPressed)
			}
			if d.Released != tt.wantReleased {
				t.Errorf("Released = %s, want %s", d.Released, tt.wantReleased)
			}
		})
	}
}

func TestComputeDeltaKeys(t *testing.T) {
	var prev, cur InputSnapshot
	prev.SetKey(KeySpace, true)
	prev.SetKey(KeyA, true)
	cur.SetKey(KeyA, true)
	cur.SetKey(KeyF5, true)
	cur.SetKey(KeyEscape, true)

	d := ComputeDelta(&cur, &prev)

	if got, want := d.PressedKeys(), []Key{KeyEscape, KeyF5}; !reflect.DeepEqual(got, want) {
		t.Errorf("PressedKeys = %v, want %v", got, want)
	}
	if got, want := d.ReleasedKeys(), []Key{KeySpace}; !reflect.DeepEqual(got, want) {
		t.Errorf("ReleasedKeys = %v, want %v", got, want)
	}
}

func TestComputeDeltaFirstFrame(t *testing.T) {
	cur := InputSnapshot{Buttons: MouseButtonRight}
	cur.SetKey(KeyZ, true)

	d := ComputeDelta(&cur, nil)
	if d.Pressed != MouseButtonRight {
		t.Errorf("Expected Right pressed against the zero snapshot, got %s", d.Pressed)
	}
	if !d.KeysPressed[KeyZ] {
		t.Error("Expected KeyZ pressed against the zero snapshot")
	}
}

func TestComputeDeltaIdentical(t *testing.T) {
	s := InputSnapshot{MouseX: 5, MouseY: 6, Buttons: MouseButtonLeft}
	s.SetKey(KeyEnter, true)
	same := s
	same.SetMousePos(50, 60) // movement is not a transition

	d := ComputeDelta(&same, &s)
	if !d.Empty() {
		t.Error("Expected empty delta for identical buttons and keys")
	}
}

func TestDeltaSplitButtonsOrder(t *testing.T) {
	d := InputDelta{Pressed: MouseButton6 | MouseButtonLeft | MouseButtonMiddle}
	want := []MouseButton{MouseButtonLeft, MouseButtonMiddle, MouseButton6}
	if got := d.PressedButtons(); !reflect.DeepEqual(got, want) {
		t.Errorf("PressedButtons = %v, want %v", got, want)
	}
	if got := d.ReleasedButtons(); got != nil {
		t.Errorf("ReleasedButtons = %v, want nil", got)
	}
}
