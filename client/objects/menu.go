package objects

import (
	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/types"
)

const (
	menuFontSize   = 24
	menuLineHeight = 40
)

// MenuObject draws the title menu entries with the selection highlighted.
type MenuObject struct {
	y int
}

func NewMenuObject(y int) *MenuObject {
	return &MenuObject{y: y}
}

func (o *MenuObject) Draw(s render.Surface, m *types.MatchState) {
	for i, option := range types.MenuOptions {
		label := option.String()
		clr := ColorDim
		if option == m.Selected {
			label = "> " + label + " <"
			clr = ColorHighlight
		}
		s.DrawText(centerX(s, label, menuFontSize), o.y+i*menuLineHeight, label, menuFontSize, clr)
	}
}
