package sigui

// InputDelta holds the transitions between two consecutive snapshots.
type InputDelta struct {
	// Button bits that went down / up this frame
	Pressed  MouseButton
	Released MouseButton

	// Keys that went down / up this frame
	KeysPressed  [KeyCount]bool
	KeysReleased [KeyCount]bool
}

// ComputeDelta diffs current against previous. A nil snapshot counts as the
// zero snapshot, so anything held on the first frame shows up as a press.
func ComputeDelta(current, previous *InputSnapshot) InputDelta {
	var zero InputSnapshot
	if current == nil {
		current = &zero
	}
	if previous == nil {
		previous = &zero
	}

	d := InputDelta{
		Pressed:  current.Buttons &^ previous.Buttons,
		Released: previous.Buttons &^ current.Buttons,
	}
	for i := range current.Keys {
		d.KeysPressed[i] = current.Keys[i] && !previous.Keys[i]
		d.KeysReleased[i] = !current.Keys[i] && previous.Keys[i]
	}
	return d
}

// Empty returns true if nothing transitioned.
func (d *InputDelta) Empty() bool {
	if d.Pressed != 0 || d.Released != 0 {
		return false
	}
	for i := range d.KeysPressed {
		if d.KeysPressed[i] || d.KeysReleased[i] {
			return false
		}
	}
	return true
}

// PressedButtons returns each pressed button bit, lowest bit first.
func (d *InputDelta) PressedButtons() []MouseButton {
	return splitButtons(d.Pressed)
}

// ReleasedButtons returns each released button bit, lowest bit first.
func (d *InputDelta) ReleasedButtons() []MouseButton {
	return splitButtons(d.Released)
}

// PressedKeys returns the pressed key codes in ascending order.
func (d *InputDelta) PressedKeys() []Key {
	return collectKeys(&d.KeysPressed)
}

// ReleasedKeys returns the released key codes in ascending order.
func (d *InputDelta) ReleasedKeys() []Key {
	return collectKeys(&d.KeysReleased)
}

func splitButtons(mask MouseButton) []MouseButton {
	if mask == 0 {
		return nil
	}
	var out []MouseButton
	for bit := 0; bit < mouseButtonBits; bit++ {
		b := MouseButton(1) << bit
		if mask&b != 0 {
			out = append(out, b)
		}
	}
	return out
}

func collectKeys(table *[KeyCount]bool) []Key {
	var out []Key
	for i, set := range table {
		if set {
			out = append(out, Key(i))
		}
	}
	return out
}
