// Package rendertest provides a render.Surface that records draw calls.
package rendertest

import (
	"image"
	"image/color"

	"github.com/cbodonnell/pong/client/render"
)

// CharWidth is the fixed advance used by Recorder.MeasureText.
const CharWidth = 10

type Op string

const (
	OpClear     Op = "clear"
	OpFillRect  Op = "fill-rect"
	OpDrawImage Op = "draw-image"
	OpDrawText  Op = "draw-text"
)

// Call is one recorded draw call.
type Call struct {
	Op      Op
	X, Y    int
	W, H    int
	SX, SY  float64
	Text    string
	Size    float64
	Color   color.Color
	Texture render.Texture
}

// Recorder records every draw call in order.
type Recorder struct {
	Calls []Call
}

var _ render.Surface = &Recorder{}

func (r *Recorder) Clear(clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: clr})
}

func (r *Recorder) FillRect(x, y, w, h int, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) DrawImage(tex render.Texture, x, y int, sx, sy float64, tint color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpDrawImage, X: x, Y: y, SX: sx, SY: sy, Color: tint, Texture: tex})
}

// MeasureText treats every rune as CharWidth pixels wide regardless of size.
func (r *Recorder) MeasureText(s string, _ float64) int {
	return len([]rune(s)) * CharWidth
}

func (r *Recorder) DrawText(x, y int, s string, size float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpDrawText, X: x, Y: y, Text: s, Size: size, Color: clr})
}

// ByOp returns the recorded calls of one kind.
func (r *Recorder) ByOp(op Op) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Op == op {
			calls = append(calls, c)
		}
	}
	return calls
}

// Texts returns the text of every DrawText call in order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, c := range r.ByOp(OpDrawText) {
		texts = append(texts, c.Text)
	}
	return texts
}

// Texture is a fixed-size texture for tests.
type Texture struct {
	W, H int
}

func (t Texture) Bounds() image.Rectangle {
	return image.Rect(0, 0, t.W, t.H)
}
