package objects

import (
	"image/color"

	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// PaddleObject draws one side's paddle as a filled rectangle.
type PaddleObject struct {
	side types.Side
	clr  color.Color
}

func NewPaddleObject(side types.Side) *PaddleObject {
	return &PaddleObject{
		side: side,
		clr:  ColorForeground,
	}
}

func (o *PaddleObject) Draw(s render.Surface, m *types.MatchState) {
	p := m.Left
	if o.side == types.SideRight {
		p = m.Right
	}
	s.FillRect(p.X, p.Y, p.W, p.H, o.clr)
}
