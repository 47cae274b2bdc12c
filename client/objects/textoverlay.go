package objects

import (
	"image/color"

	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// TextOverlayObject draws horizontally centered text. The text may depend on
// the match state.
type TextOverlayObject struct {
	text func(m *types.MatchState) string
	y    int
	size float64
	clr  color.Color
}

type NewTextOverlayObjectOptions struct {
	// Text is static text. Ignored when TextFunc is set.
	Text string
	// TextFunc computes the text each frame.
	TextFunc func(m *types.MatchState) string
	// Y is the top of the text line.
	Y int
	// Size is the font size.
	Size float64
	// Color is the text color. Defaults to ColorForeground.
	Color color.Color
}

func NewTextOverlayObject(opts NewTextOverlayObjectOptions) *TextOverlayObject {
	textFunc := opts.TextFunc
	if textFunc == nil {
		static := opts.Text
		textFunc = func(*types.MatchState) string { return static }
	}
	clr := opts.Color
	if clr == nil {
		clr = ColorForeground
	}
	return &TextOverlayObject{
		text: textFunc,
		y:    opts.Y,
		size: opts.Size,
		clr:  clr,
	}
}

func (o *TextOverlayObject) Draw(s render.Surface, m *types.MatchState) {
	t := o.text(m)
	if t == "" {
		return
	}
	s.DrawText(centerX(s, t, o.size), o.y, t, o.size, o.clr)
}
