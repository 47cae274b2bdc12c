package types

import "strings"

// Buttons is a bitmask over the controller buttons the game reads.
type Buttons uint8

const (
	ButtonUp Buttons = 1 << iota
	ButtonDown
	ButtonA
	ButtonB
	ButtonStart
)

// Has reports whether every bit of b is set.
func (mask Buttons) Has(b Buttons) bool {
	return b != 0 && mask&b == b
}

func (mask Buttons) String() string {
	if mask == 0 {
		return "none"
	}
	names := make([]string, 0, 5)
	for _, b := range []struct {
		bit  Buttons
		name string
	}{
		{ButtonUp, "up"},
		{ButtonDown, "down"},
		{ButtonA, "a"},
		{ButtonB, "b"},
		{ButtonStart, "start"},
	} {
		if mask.Has(b.bit) {
			names = append(names, b.name)
		}
	}
	return strings.Join(names, "+")
}

// Input is one frame of controller state.
type Input struct {
	// Pressed holds buttons that went down this frame.
	Pressed Buttons
	// Held holds buttons that are down this frame.
	Held Buttons
}
