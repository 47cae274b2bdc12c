package input

import (
	"testing"

	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
)

type fakeSource struct {
	held        map[ebiten.Key]bool
	justPressed map[ebiten.Key]bool

	gamepads    []ebiten.GamepadID
	standard    bool
	stdHeld     map[ebiten.StandardGamepadButton]bool
	stdPressed  map[ebiten.StandardGamepadButton]bool
	rawHeld     map[ebiten.GamepadButton]bool
	rawPressed  map[ebiten.GamepadButton]bool
	queriedPads map[ebiten.GamepadID]bool
}

func (f *fakeSource) IsKeyPressed(key ebiten.Key) bool     { return f.held[key] }
func (f *fakeSource) IsKeyJustPressed(key ebiten.Key) bool { return f.justPressed[key] }
func (f *fakeSource) GamepadIDs() []ebiten.GamepadID       { return f.gamepads }

func (f *fakeSource) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return f.standard
}

func (f *fakeSource) IsStandardGamepadButtonPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	f.query(id)
	return f.stdHeld[b]
}

func (f *fakeSource) IsStandardGamepadButtonJustPressed(id ebiten.GamepadID, b ebiten.StandardGamepadButton) bool {
	f.query(id)
	return f.stdPressed[b]
}

func (f *fakeSource) IsGamepadButtonPressed(id ebiten.GamepadID, b ebiten.GamepadButton) bool {
	f.query(id)
	return f.rawHeld[b]
}

func (f *fakeSource) IsGamepadButtonJustPressed(id ebiten.GamepadID, b ebiten.GamepadButton) bool {
	f.query(id)
	return f.rawPressed[b]
}

func (f *fakeSource) query(id ebiten.GamepadID) {
	if f.queriedPads == nil {
		f.queriedPads = map[ebiten.GamepadID]bool{}
	}
	f.queriedPads[id] = true
}

func TestDeviceSampler_Sample(t *testing.T) {
	tests := []struct {
		name   string
		source *fakeSource
		want   types.Input
	}{
		{
			name:   "nothing connected",
			source: &fakeSource{},
			want:   types.Input{},
		},
		{
			name: "keyboard hold",
			source: &fakeSource{
				held: map[ebiten.Key]bool{ebiten.KeyArrowDown: true},
			},
			want: types.Input{Held: types.ButtonDown},
		},
		{
			name: "keyboard press is also held",
			source: &fakeSource{
				held:        map[ebiten.Key]bool{ebiten.KeyEnter: true},
				justPressed: map[ebiten.Key]bool{ebiten.KeyEnter: true},
			},
			want: types.Input{Pressed: types.ButtonA, Held: types.ButtonA},
		},
		{
			name: "keyboard quit combo",
			source: &fakeSource{
				held:        map[ebiten.Key]bool{ebiten.KeyX: true, ebiten.KeyEscape: true},
				justPressed: map[ebiten.Key]bool{ebiten.KeyEscape: true},
			},
			want: types.Input{Pressed: types.ButtonStart, Held: types.ButtonB | types.ButtonStart},
		},
		{
			name: "standard gamepad",
			source: &fakeSource{
				gamepads: []ebiten.GamepadID{3},
				standard: true,
				stdHeld: map[ebiten.StandardGamepadButton]bool{
					ebiten.StandardGamepadButtonLeftTop:    true,
					ebiten.StandardGamepadButtonRightRight: true,
				},
				stdPressed: map[ebiten.StandardGamepadButton]bool{
					ebiten.StandardGamepadButtonRightRight: true,
				},
			},
			want: types.Input{Pressed: types.ButtonB, Held: types.ButtonUp | types.ButtonB},
		},
		{
			name: "raw gamepad fallback",
			source: &fakeSource{
				gamepads:   []ebiten.GamepadID{0},
				rawHeld:    map[ebiten.GamepadButton]bool{ebiten.GamepadButton0: true},
				rawPressed: map[ebiten.GamepadButton]bool{ebiten.GamepadButton0: true},
				stdHeld:    map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonLeftBottom: true},
			},
			want: types.Input{Pressed: types.ButtonA, Held: types.ButtonA},
		},
		{
			name: "keyboard and gamepad merge",
			source: &fakeSource{
				held:     map[ebiten.Key]bool{ebiten.KeyArrowUp: true},
				gamepads: []ebiten.GamepadID{0},
				standard: true,
				stdHeld:  map[ebiten.StandardGamepadButton]bool{ebiten.StandardGamepadButtonLeftBottom: true},
			},
			want: types.Input{Held: types.ButtonUp | types.ButtonDown},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewDeviceSampler(tt.source).Sample()
			assert.Equal(t, tt.want, got, "got pressed=%s held=%s", got.Pressed, got.Held)
		})
	}
}

func TestDeviceSampler_SampleUsesFirstGamepad(t *testing.T) {
	source := &fakeSource{
		gamepads: []ebiten.GamepadID{7, 2},
		standard: true,
	}
	NewDeviceSampler(source).Sample()
	assert.Equal(t, map[ebiten.GamepadID]bool{7: true}, source.queriedPads)
}
