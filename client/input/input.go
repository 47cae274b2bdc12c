package input

import (
	"github.com/cbodonnell/pong/pkg/game/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Sampler produces one frame of controller input.
type Sampler interface {
	Sample() types.Input
}

// Source is the polled device state a sampler reads from.
type Source interface {
	IsKeyPressed(key ebiten.Key) bool
	IsKeyJustPressed(key ebiten.Key) bool
	GamepadIDs() []ebiten.GamepadID
	IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool
	IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	IsStandardGamepadButtonJustPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool
	IsGamepadButtonPressed(id ebiten.GamepadID, button ebiten.GamepadButton) bool
	IsGamepadButtonJustPressed(id ebiten.GamepadID, button ebiten.GamepadButton) bool
}

type binding struct {
	button   types.Buttons
	keys     []ebiten.Key
	standard []ebiten.StandardGamepadButton
	// raw buttons are used when the standard layout is unavailable.
	// The button 0/1 might not be A/B buttons.
	raw []ebiten.GamepadButton
}

var bindings = []binding{
	{
		button:   types.ButtonUp,
		keys:     []ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW},
		standard: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		raw:      []ebiten.GamepadButton{ebiten.GamepadButton11},
	},
	{
		button:   types.ButtonDown,
		keys:     []ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS},
		standard: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		raw:      []ebiten.GamepadButton{ebiten.GamepadButton13},
	},
	{
		button:   types.ButtonA,
		keys:     []ebiten.Key{ebiten.KeyZ, ebiten.KeyEnter, ebiten.KeySpace},
		standard: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		raw:      []ebiten.GamepadButton{ebiten.GamepadButton0},
	},
	{
		button:   types.ButtonB,
		keys:     []ebiten.Key{ebiten.KeyX, ebiten.KeyBackspace},
		standard: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		raw:      []ebiten.GamepadButton{ebiten.GamepadButton1},
	},
	{
		button:   types.ButtonStart,
		keys:     []ebiten.Key{ebiten.KeyEscape},
		standard: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		raw:      []ebiten.GamepadButton{ebiten.GamepadButton9},
	},
}

// DeviceSampler merges the keyboard with the gamepad in slot 0, the first
// connected gamepad. No gamepad means no gamepad buttons.
type DeviceSampler struct {
	source Source
}

var _ Sampler = &DeviceSampler{}

func NewDeviceSampler(source Source) *DeviceSampler {
	return &DeviceSampler{
		source: source,
	}
}

// NewEbitenSampler samples the devices ebiten polls each tick.
func NewEbitenSampler() *DeviceSampler {
	return NewDeviceSampler(EbitenSource{})
}

func (s *DeviceSampler) Sample() types.Input {
	var in types.Input

	for _, b := range bindings {
		for _, k := range b.keys {
			if s.source.IsKeyJustPressed(k) {
				in.Pressed |= b.button
			}
			if s.source.IsKeyPressed(k) {
				in.Held |= b.button
			}
		}
	}

	ids := s.source.GamepadIDs()
	if len(ids) == 0 {
		return in
	}
	id := ids[0]

	if s.source.IsStandardGamepadLayoutAvailable(id) {
		for _, b := range bindings {
			for _, sb := range b.standard {
				if s.source.IsStandardGamepadButtonJustPressed(id, sb) {
					in.Pressed |= b.button
				}
				if s.source.IsStandardGamepadButtonPressed(id, sb) {
					in.Held |= b.button
				}
			}
		}
		return in
	}

	for _, b := range bindings {
		for _, rb := range b.raw {
			if s.source.IsGamepadButtonJustPressed(id, rb) {
				in.Pressed |= b.button
			}
			if s.source.IsGamepadButtonPressed(id, rb) {
				in.Held |= b.button
			}
		}
	}
	return in
}

// EbitenSource reads ebiten's input state. Just-pressed edges come from inpututil.
type EbitenSource struct{}

var _ Source = EbitenSource{}

func (EbitenSource) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

func (EbitenSource) IsKeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}

func (EbitenSource) GamepadIDs() []ebiten.GamepadID {
	return ebiten.AppendGamepadIDs(nil)
}

func (EbitenSource) IsStandardGamepadLayoutAvailable(id ebiten.GamepadID) bool {
	return ebiten.IsStandardGamepadLayoutAvailable(id)
}

func (EbitenSource) IsStandardGamepadButtonPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (EbitenSource) IsStandardGamepadButtonJustPressed(id ebiten.GamepadID, button ebiten.StandardGamepadButton) bool {
	return inpututil.IsStandardGamepadButtonJustPressed(id, button)
}

func (EbitenSource) IsGamepadButtonPressed(id ebiten.GamepadID, button ebiten.GamepadButton) bool {
	return ebiten.IsGamepadButtonPressed(id, button)
}

func (EbitenSource) IsGamepadButtonJustPressed(id ebiten.GamepadID, button ebiten.GamepadButton) bool {
	return inpututil.IsGamepadButtonJustPressed(id, button)
}
