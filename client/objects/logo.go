package objects

import (
	"github.com/cbodonnell/pong/client/render"
	"github.com/cbodonnell/pong/pkg/game/constants"
	"github.com/cbodonnell/pong/pkg/game/types"
)

const (
	titleText     = "PONG"
	titleFontSize = 64
)

// LogoObject draws the title logo, or the title text when no logo is loaded.
type LogoObject struct {
	logo render.Texture
	y    int
}

func NewLogoObject(logo render.Texture, y int) *LogoObject {
	return &LogoObject{
		logo: logo,
		y:    y,
	}
}

func (o *LogoObject) Draw(s render.Surface, _ *types.MatchState) {
	if o.logo == nil {
		s.DrawText(centerX(s, titleText, titleFontSize), o.y, titleText, titleFontSize, ColorForeground)
		return
	}
	x := (constants.ScreenWidth - o.logo.Bounds().Dx()) / 2
	s.DrawImage(o.logo, x, o.y, 1, 1, ColorForeground)
}
