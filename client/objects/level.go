package objects

import (
	"image/color"

	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

// CenterLineObject draws the dashed net down the middle of the court.
type CenterLineObject struct {
	width int
	dash  int
	gap   int
	clr   color.Color
}

func NewCenterLineObject() *CenterLineObject {
	return &CenterLineObject{
		width: 2,
		dash:  12,
		gap:   8,
		clr:   ColorDim,
	}
}

func (o *CenterLineObject) Draw(s render.Surface, _ *types.MatchState) {
	x := constants.ScreenWidth/2 - o.width/2
	for y := 0; y < constants.ScreenHeight; y += o.dash + o.gap {
		s.FillRect(x, y, o.width, o.dash, o.clr)
	}
}
